package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var gotPosition int
		var gotPage *handbook.Page
		s := &mock.PageStore{
			SaveFn: func(_ context.Context, position int, page *handbook.Page) error {
				gotPosition = position
				gotPage = page
				return nil
			},
		}
		page := &handbook.Page{ID: handbook.SectionIncome, Title: "수입 업무 튜토리얼"}

		err := s.Save(context.Background(), 3, page)

		require.NoError(t, err)
		assert.Equal(t, 3, gotPosition)
		assert.Same(t, page, gotPage)
	})

	t.Run("returns error from SaveFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.PageStore{
			SaveFn: func(context.Context, int, *handbook.Page) error {
				return handbook.Errorf(handbook.EINTERNAL, "disk full")
			},
		}

		err := s.Save(context.Background(), 1, &handbook.Page{})

		assert.Equal(t, handbook.EINTERNAL, handbook.ErrorCode(err))
	})
}

func TestNavigator_ResolveAndActivate(t *testing.T) {
	t.Parallel()

	n := &mock.Navigator{
		ResolveAndActivateFn: func(s *handbook.Session, query string) (handbook.SectionID, bool) {
			return handbook.SectionIncome, query == "수입"
		},
	}

	id, ok := n.ResolveAndActivate(handbook.NewSession(handbook.SectionOverview), "수입")

	assert.True(t, ok)
	assert.Equal(t, handbook.SectionIncome, id)
}
