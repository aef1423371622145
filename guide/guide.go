// Package guide holds the built-in content of the handbook: the default
// section catalog, the landing section, and one HTML fragment per section.
package guide

import (
	"slices"

	"github.com/fwojciec/handbook"
)

// Sidebar strings shown above the section list.
const (
	Title             = "바이오코어 사업단"
	Subtitle          = "수입·지출 업무 튜토리얼"
	Tagline           = "인계인수서(2026.02.13)와 매뉴얼을 기반으로 한 화면 단위 시뮬레이션 가이드"
	SearchPlaceholder = "메뉴 검색 (예: 수입, 지출, 체크리스트)"
)

// DefaultLanding is the section a new session starts on.
const DefaultLanding = handbook.SectionOverview

var defaultSections = []handbook.Section{
	{
		ID:       handbook.SectionDashboard,
		Label:    "대시보드",
		Keywords: []string{"대시보드", "오늘", "처리", "마감"},
	},
	{
		ID:       handbook.SectionOverview,
		Label:    "업무 개요",
		Keywords: []string{"업무개요", "4대시스템", "e-Branch", "연구비종합", "베스트케어", "통합이지바로", "흐름"},
	},
	{
		ID:       handbook.SectionIncome,
		Label:    "수입 업무 튜토리얼",
		Keywords: []string{"수입", "사업비", "병원대응자금", "수입결의", "계좌거래"},
	},
	{
		ID:       handbook.SectionReallocation,
		Label:    "대체결의 튜토리얼",
		Keywords: []string{"대체결의", "간접비", "인건비", "퇴직적립금", "징수결의"},
	},
	{
		ID:       handbook.SectionExpense,
		Label:    "지출 업무 튜토리얼",
		Keywords: []string{"지출", "일반청구", "카드청구", "세금계산서", "계좌이체", "비목코드", "73733", "73732"},
	},
	{
		ID:       handbook.SectionSystems,
		Label:    "시스템별 상세",
		Keywords: []string{"시스템", "e-Branch", "연구비종합", "베스트케어", "통합이지바로", "메뉴"},
	},
	{
		ID:       handbook.SectionChecklist,
		Label:    "체크리스트 및 자주 하는 실수",
		Keywords: []string{"체크리스트", "실수", "과제기간", "비목", "증빙", "결재"},
	},
	{
		ID:       handbook.SectionContacts,
		Label:    "담당자·계정 정보",
		Keywords: []string{"담당자", "계정", "연락처", "연락"},
	},
	{
		ID:       handbook.SectionSecurity,
		Label:    "보안 및 유의사항",
		Keywords: []string{"보안", "ID", "PW", "비밀번호", "계좌", "마스킹"},
	},
}

// DefaultSections returns the built-in section descriptors in sidebar order.
// The returned slice is a copy and may be modified.
func DefaultSections() []handbook.Section {
	out := make([]handbook.Section, len(defaultSections))
	for i, s := range defaultSections {
		s.Keywords = slices.Clone(s.Keywords)
		out[i] = s
	}
	return out
}

// DefaultSection returns the built-in descriptor for id.
func DefaultSection(id handbook.SectionID) (handbook.Section, bool) {
	for _, s := range defaultSections {
		if s.ID == id {
			s.Keywords = slices.Clone(s.Keywords)
			return s, true
		}
	}
	return handbook.Section{}, false
}

// DefaultCatalog returns a Catalog over DefaultSections.
func DefaultCatalog() *handbook.Catalog {
	return handbook.MustCatalog(DefaultSections())
}
