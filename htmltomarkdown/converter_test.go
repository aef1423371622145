package htmltomarkdown_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements handbook.Converter at compile time.
var _ handbook.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraph with emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>상황</strong>: 사업비가 입금되었습니다.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "**상황**: 사업비가 입금되었습니다.", md)
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		html := `<h2>사업비 수입결의</h2><h3>Step 1. e-Branch – 입금 내역 확인</h3>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## 사업비 수입결의")
		assert.Contains(t, md, "### Step 1. e-Branch – 입금 내역 확인")
	})

	t.Run("converts ordered steps", func(t *testing.T) {
		t.Parallel()

		html := `<ol><li>로그인</li><li>조회 버튼 클릭</li></ol>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "1. 로그인")
		assert.Contains(t, md, "2. 조회 버튼 클릭")
	})

	t.Run("converts checklist items", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>☐ 과제번호·사업명 일치 여부</li><li>☐ 금액 기준 일치</li></ul>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- ☐ 과제번호·사업명 일치 여부")
		assert.Contains(t, md, "- ☐ 금액 기준 일치")
	})

	t.Run("converts warnings as blockquotes", func(t *testing.T) {
		t.Parallel()

		html := `<blockquote><p>셋트로 묶어 결재하는 것이 원칙입니다.</p></blockquote>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "> 셋트로 묶어 결재하는 것이 원칙입니다.")
	})

	t.Run("converts flow boxes as code blocks", func(t *testing.T) {
		t.Parallel()

		html := "<pre><code>1. 예산 편성 / 배정\n2. 수입 발생 · 입금 확인 (e-Branch)</code></pre>"

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(md, "```"), "got %q", md)
		assert.Contains(t, md, "1. 예산 편성 / 배정\n2. 수입 발생 · 입금 확인 (e-Branch)")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>시스템</th><th>주요 기능</th></tr></thead>
<tbody><tr><td>e-Branch</td><td>계좌 입금 확인</td></tr><tr><td>베스트케어</td><td>지출결의서 작성</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		// Cells may be padded for alignment.
		assert.Contains(t, md, "시스템")
		assert.Contains(t, md, "주요 기능")
		assert.Contains(t, md, "e-Branch")
		assert.Contains(t, md, "지출결의서 작성")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n\n<p>본문</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "본문", md)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert(" \n ")

		require.Error(t, err)
		assert.Equal(t, handbook.EINVALID, handbook.ErrorCode(err))
	})
}
