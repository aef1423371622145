package handbook_test

import (
	"testing"

	"github.com/fwojciec/handbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower-cases latin letters", "E-Branch", "e-branch"},
		{"removes spaces", "업무 개요", "업무개요"},
		{"removes tabs and newlines", "수입\t업무\n튜토리얼", "수입업무튜토리얼"},
		{"removes ideographic space", "업무　개요", "업무개요"},
		{"removes no-break space", "업무\u00a0개요", "업무개요"},
		{"removes byte order mark", "\ufeff수입", "수입"},
		{"removes line separator", "수입\u2028업무", "수입업무"},
		{"keeps next-line control", "수입\u0085업무", "수입\u0085업무"},
		{"blank becomes empty", " \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, handbook.Normalize(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("blank query matches nothing", func(t *testing.T) {
		t.Parallel()

		c := twoSectionCatalog(t)

		for _, q := range []string{"", "   ", "\t\n", "\ufeff\u3000"} {
			_, ok := handbook.Resolve(c, q)
			assert.False(t, ok, "query %q", q)
		}
	})

	t.Run("label substring ignores case and whitespace", func(t *testing.T) {
		t.Parallel()

		c := twoSectionCatalog(t)

		for _, q := range []string{"업무 개요", "업무개요", " 업 무 개 요 ", "무개"} {
			m, ok := handbook.Resolve(c, q)
			require.True(t, ok, "query %q", q)
			assert.Equal(t, handbook.SectionOverview, m.ID)
			assert.Equal(t, handbook.RuleLabel, m.Rule)
			assert.Empty(t, m.Keyword)
		}
	})

	t.Run("label match on mixed case", func(t *testing.T) {
		t.Parallel()

		c := handbook.MustCatalog([]handbook.Section{
			{ID: handbook.SectionSystems, Label: "e-Branch 시스템"},
		})

		m, ok := handbook.Resolve(c, "E-BRANCH")

		require.True(t, ok)
		assert.Equal(t, handbook.SectionSystems, m.ID)
	})

	t.Run("keyword containing the query", func(t *testing.T) {
		t.Parallel()

		c := twoSectionCatalog(t)

		m, ok := handbook.Resolve(c, "계좌")

		require.True(t, ok)
		assert.Equal(t, handbook.SectionIncome, m.ID)
		assert.Equal(t, handbook.RuleKeyword, m.Rule)
		assert.Equal(t, "계좌거래", m.Keyword)
	})

	t.Run("query containing a keyword", func(t *testing.T) {
		t.Parallel()

		c := twoSectionCatalog(t)

		m, ok := handbook.Resolve(c, "이번달 수입 정리")

		require.True(t, ok)
		assert.Equal(t, handbook.SectionIncome, m.ID)
		assert.Equal(t, handbook.RuleQueryContainsKeyword, m.Rule)
		assert.Equal(t, "수입", m.Keyword)
	})

	t.Run("earlier section wins ties", func(t *testing.T) {
		t.Parallel()

		c := handbook.MustCatalog([]handbook.Section{
			{ID: handbook.SectionExpense, Label: "지출 업무", Keywords: []string{"청구"}},
			{ID: handbook.SectionChecklist, Label: "체크리스트", Keywords: []string{"청구"}},
		})

		m, ok := handbook.Resolve(c, "청구")

		require.True(t, ok)
		assert.Equal(t, handbook.SectionExpense, m.ID)
	})

	t.Run("declaration order decides ties, not id order", func(t *testing.T) {
		t.Parallel()

		c := handbook.MustCatalog([]handbook.Section{
			{ID: handbook.SectionChecklist, Label: "체크리스트", Keywords: []string{"청구"}},
			{ID: handbook.SectionExpense, Label: "지출 업무", Keywords: []string{"청구"}},
		})

		m, ok := handbook.Resolve(c, "청구")

		require.True(t, ok)
		assert.Equal(t, handbook.SectionChecklist, m.ID)
	})

	t.Run("keyword hit in earlier section beats label hit in later one", func(t *testing.T) {
		t.Parallel()

		c := handbook.MustCatalog([]handbook.Section{
			{ID: handbook.SectionOverview, Label: "업무 개요", Keywords: []string{"지출 흐름"}},
			{ID: handbook.SectionExpense, Label: "지출"},
		})

		m, ok := handbook.Resolve(c, "지출")

		require.True(t, ok)
		assert.Equal(t, handbook.SectionOverview, m.ID)
		assert.Equal(t, handbook.RuleKeyword, m.Rule)
	})

	t.Run("unknown query matches nothing", func(t *testing.T) {
		t.Parallel()

		c := twoSectionCatalog(t)

		_, ok := handbook.Resolve(c, "존재하지않는검색어")

		assert.False(t, ok)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		c := twoSectionCatalog(t)

		for _, q := range []string{"수입", "흐름", "존재하지않는검색어", ""} {
			first, firstOK := handbook.Resolve(c, q)
			for range 10 {
				m, ok := handbook.Resolve(c, q)
				assert.Equal(t, firstOK, ok)
				assert.Equal(t, first, m)
			}
		}
	})

	t.Run("every label resolves to its own section", func(t *testing.T) {
		t.Parallel()

		c := twoSectionCatalog(t)

		for _, id := range c.IDs() {
			m, ok := handbook.Resolve(c, c.Label(id))
			require.True(t, ok)
			assert.Equal(t, id, m.ID)
		}
	})

	t.Run("every keyword resolves to its own section", func(t *testing.T) {
		t.Parallel()

		c := twoSectionCatalog(t)

		for _, id := range c.IDs() {
			for _, k := range c.Keywords(id) {
				m, ok := handbook.Resolve(c, k)
				require.True(t, ok, "keyword %q", k)
				assert.Equal(t, id, m.ID, "keyword %q", k)
			}
		}
	})
}

func TestMatchRule_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "label", handbook.RuleLabel.String())
	assert.Equal(t, "keyword", handbook.RuleKeyword.String())
	assert.Equal(t, "query-contains-keyword", handbook.RuleQueryContainsKeyword.String())
	assert.Equal(t, "none", handbook.MatchRule(0).String())
}
