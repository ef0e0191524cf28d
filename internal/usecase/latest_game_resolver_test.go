package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/panjf2000/ants/v2"
	usecasemock "github.com/riskibarqy/boxscore/internal/mocks/usecase"
	"github.com/riskibarqy/boxscore/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestLatestGameResolver_NotFoundSkipsGamesFallback(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewDataSource(t)
	source.On("GetLatestGame", mock.Anything, "101").Return(nil, usecase.ErrNotFound).Once()

	resolver := usecase.NewLatestGameResolver(source, nil, nil)
	if _, found := resolver.ResolveLatest(context.Background(), "101"); found {
		t.Fatalf("expected no latest game for missing player")
	}
	source.AssertNotCalled(t, "GetGames", mock.Anything, mock.Anything, mock.Anything)
}

func TestLatestGameResolver_ArrayPicksNewest(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewDataSource(t)
	source.On("GetLatestGame", mock.Anything, "101").Return([]any{
		map[string]any{"gameID": "a", "gameDate": "2024-05-01"},
		map[string]any{"gameID": "b", "GameDate": "2024-06-10"},
		map[string]any{"gameID": "c", "gameDate": "15/04/2024"},
	}, nil).Once()

	resolver := usecase.NewLatestGameResolver(source, nil, nil)
	got, found := resolver.ResolveLatest(context.Background(), "101")
	if !found || got.ID() != "b" {
		t.Fatalf("unexpected latest game: id=%q found=%v", got.ID(), found)
	}
}

func TestLatestGameResolver_WrappedArray(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewDataSource(t)
	source.On("GetLatestGame", mock.Anything, "7").Return(map[string]any{
		"games": []any{
			map[string]any{"gameID": "old", "gameDate": "2023-01-01"},
			map[string]any{"gameID": "new", "gameDate": "2023-02-01"},
		},
	}, nil).Once()

	resolver := usecase.NewLatestGameResolver(source, nil, nil)
	got, found := resolver.ResolveLatest(context.Background(), "7")
	if !found || got.ID() != "new" {
		t.Fatalf("unexpected latest game: id=%q found=%v", got.ID(), found)
	}
}

func TestLatestGameResolver_SingleObjectVerifiedAgainstHistory(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewDataSource(t)
	source.On("GetLatestGame", mock.Anything, "101").
		Return(map[string]any{"gameID": "stale", "gameDate": "2024-01-01"}, nil).Once()
	source.On("GetGames", mock.Anything, "101", usecase.GameFilters{}).
		Return([]any{
			map[string]any{"gameID": "stale", "gameDate": "2024-01-01"},
			map[string]any{"gameID": "fresh", "gameDate": "2024-03-01"},
		}, nil).Once()

	resolver := usecase.NewLatestGameResolver(source, nil, nil)
	got, found := resolver.ResolveLatest(context.Background(), "101")
	if !found || got.ID() != "fresh" {
		t.Fatalf("expected newer game from history, got id=%q found=%v", got.ID(), found)
	}
}

func TestLatestGameResolver_SingleObjectKeptWhenHistoryFails(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewDataSource(t)
	source.On("GetLatestGame", mock.Anything, "101").
		Return(map[string]any{"gameID": "only", "gameDate": "2024-01-01"}, nil).Once()
	source.On("GetGames", mock.Anything, "101", usecase.GameFilters{}).
		Return(nil, usecase.ErrDependencyUnavailable).Once()

	resolver := usecase.NewLatestGameResolver(source, nil, nil)
	got, found := resolver.ResolveLatest(context.Background(), "101")
	if !found || got.ID() != "only" {
		t.Fatalf("expected single object fallback, got id=%q found=%v", got.ID(), found)
	}
}

func TestLatestGameResolver_SingleObjectKeptWhenHistoryEmpty(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewDataSource(t)
	source.On("GetLatestGame", mock.Anything, "101").
		Return(map[string]any{"gameID": "only"}, nil).Once()
	source.On("GetGames", mock.Anything, "101", usecase.GameFilters{}).
		Return(map[string]any{"games": []any{}}, nil).Once()

	resolver := usecase.NewLatestGameResolver(source, nil, nil)
	got, found := resolver.ResolveLatest(context.Background(), "101")
	if !found || got.ID() != "only" {
		t.Fatalf("expected single object fallback, got id=%q found=%v", got.ID(), found)
	}
}

func TestLatestGameResolver_UnknownShapeAndFailure(t *testing.T) {
	t.Parallel()

	source := usecasemock.NewDataSource(t)
	source.On("GetLatestGame", mock.Anything, "str").Return("no games", nil).Once()
	source.On("GetLatestGame", mock.Anything, "err").Return(nil, errors.New("boom")).Once()

	resolver := usecase.NewLatestGameResolver(source, nil, nil)
	if _, found := resolver.ResolveLatest(context.Background(), "str"); found {
		t.Fatalf("expected string payload to resolve to nothing")
	}
	if _, found := resolver.ResolveLatest(context.Background(), "err"); found {
		t.Fatalf("expected failed request to resolve to nothing")
	}
}

func TestLatestGameResolver_ResolveBatchIsolatesFailures(t *testing.T) {
	t.Parallel()

	pool, err := ants.NewPool(2)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	defer pool.Release()

	source := usecasemock.NewDataSource(t)
	source.On("GetLatestGame", mock.Anything, "1").Return([]any{map[string]any{"gameID": "g1", "gameDate": "2024-01-01"}}, nil).Once()
	source.On("GetLatestGame", mock.Anything, "2").Return(nil, usecase.ErrDependencyUnavailable).Once()
	source.On("GetLatestGame", mock.Anything, "3").Return([]any{}, nil).Once()

	resolver := usecase.NewLatestGameResolver(source, pool, nil)
	result, err := resolver.ResolveBatch(context.Background(), []string{"1", "2", "3", "1", " "})
	if err != nil {
		t.Fatalf("resolve batch: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected three entries, got %d", len(result))
	}
	if g, found, _ := result.Lookup("1"); !found || g.ID() != "g1" {
		t.Fatalf("unexpected result for 1: id=%q found=%v", g.ID(), found)
	}
	if _, found, resolved := result.Lookup("2"); found || !resolved {
		t.Fatalf("expected explicit none for 2")
	}
	if _, found, resolved := result.Lookup("3"); found || !resolved {
		t.Fatalf("expected explicit none for 3")
	}
	if _, _, resolved := result.Lookup("4"); resolved {
		t.Fatalf("expected 4 to be absent from batch")
	}
}

func TestLatestGameResolver_ResolveBatchCancelledPublishesNothing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	source := usecasemock.NewDataSource(t)
	source.On("GetLatestGame", mock.Anything, "1").
		Run(func(mock.Arguments) { cancel() }).
		Return(nil, context.Canceled).Once()

	resolver := usecase.NewLatestGameResolver(source, nil, nil)
	result, err := resolver.ResolveBatch(ctx, []string{"1"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no result after cancellation, got %v", result)
	}
}
