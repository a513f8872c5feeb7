package assistant

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/mocks"
)

func newTestRouter(content *mocks.ContentRepositoryMock) *Router {
	if content == nil {
		content = &mocks.ContentRepositoryMock{}
	}
	return NewRouter(content, zap.NewNop())
}

func route(t *testing.T, r *Router, req domain.CommandRequest) *domain.CommandResponse {
	t.Helper()

	normalized := Normalize(req.Utterance)
	resp, err := r.Route(context.Background(), req, ClassifyIntent(normalized), ExtractEntities(normalized))
	if err != nil {
		t.Fatalf("Route returned unexpected error: %v", err)
	}
	return resp
}

func TestRoute_SearchContext_ExtractsTermWithOriginalCasing(t *testing.T) {
	// Arrange
	r := newTestRouter(nil)
	req := domain.CommandRequest{
		Utterance: "search for Free Solo",
		Context:   domain.ContextSearch,
	}

	// Act
	resp := route(t, r, req)

	// Assert
	if resp.Action != ActionSearch {
		t.Fatalf("action = %q, want %q", resp.Action, ActionSearch)
	}
	data, ok := resp.Data.(domain.SearchData)
	if !ok {
		t.Fatalf("data type = %T, want SearchData", resp.Data)
	}
	if data.Query != "Free Solo" {
		t.Errorf("query = %q, want %q with casing preserved", data.Query, "Free Solo")
	}
}

func TestRoute_SearchContext_FilterCommand(t *testing.T) {
	r := newTestRouter(nil)
	req := domain.CommandRequest{
		Utterance: "filter by audio description",
		Context:   domain.ContextSearch,
	}

	resp := route(t, r, req)

	if resp.Action != ActionFilter {
		t.Fatalf("action = %q, want %q", resp.Action, ActionFilter)
	}
	data, ok := resp.Data.(domain.FilterData)
	if !ok {
		t.Fatalf("data type = %T, want FilterData", resp.Data)
	}
	if data.Filter != "audio description" {
		t.Errorf("filter = %q, want %q", data.Filter, "audio description")
	}
}

func TestRoute_SearchContext_StoreFailureDegrades(t *testing.T) {
	// A content store outage must not fail the command.
	content := &mocks.ContentRepositoryMock{
		SearchFunc: func(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error) {
			return nil, errors.New("connection refused")
		},
	}
	r := newTestRouter(content)

	resp := route(t, r, domain.CommandRequest{
		Utterance: "search for drama",
		Context:   domain.ContextSearch,
	})

	if resp.Action != ActionSearch {
		t.Errorf("action = %q, want %q despite store failure", resp.Action, ActionSearch)
	}
}

func TestRoute_PlayerContext_RequiresContentID(t *testing.T) {
	r := newTestRouter(nil)
	req := domain.CommandRequest{
		Utterance: "play",
		Context:   domain.ContextPlayer,
	}

	_, err := r.Route(context.Background(), req, ClassifyIntent("play"), domain.EntitySet{})

	if !errors.Is(err, domain.ErrContentIDRequired) {
		t.Errorf("err = %v, want ErrContentIDRequired", err)
	}
}

func TestRoute_PlayerContext_EnableCaptions(t *testing.T) {
	r := newTestRouter(nil)
	req := domain.CommandRequest{
		Utterance: "enable captions",
		Context:   domain.ContextPlayer,
		ContentID: "tt123",
	}

	resp := route(t, r, req)

	if resp.Action != ActionCaptions {
		t.Fatalf("action = %q, want %q", resp.Action, ActionCaptions)
	}
	data, ok := resp.Data.(domain.CaptionsData)
	if !ok {
		t.Fatalf("data type = %T, want CaptionsData", resp.Data)
	}
	if !data.Enable {
		t.Error("Enable = false, want true for \"enable captions\"")
	}
	if data.ContentID != "tt123" {
		t.Errorf("ContentID = %q, want tt123", data.ContentID)
	}
}

func TestRoute_PlayerContext_FirstMatchOrder(t *testing.T) {
	// "play" is checked before "volume", so a command mentioning both is a
	// play command.
	r := newTestRouter(nil)

	resp := route(t, r, domain.CommandRequest{
		Utterance: "play with the volume",
		Context:   domain.ContextPlayer,
		ContentID: "tt123",
	})

	if resp.Action != ActionPlay {
		t.Errorf("action = %q, want %q (table order)", resp.Action, ActionPlay)
	}
}

func TestRoute_PlayerContext_VolumeDirection(t *testing.T) {
	r := newTestRouter(nil)

	tests := []struct {
		utterance string
		direction string
	}{
		{"volume up", "up"},
		{"turn the volume down", "down"},
		{"volume to half", "set"},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			resp := route(t, r, domain.CommandRequest{
				Utterance: tt.utterance,
				Context:   domain.ContextPlayer,
				ContentID: "tt123",
			})

			data, ok := resp.Data.(domain.VolumeData)
			if !ok {
				t.Fatalf("data type = %T, want VolumeData", resp.Data)
			}
			if data.Direction != tt.direction {
				t.Errorf("direction = %q, want %q", data.Direction, tt.direction)
			}
		})
	}
}

func TestRoute_DetailsContext_RequiresContentID(t *testing.T) {
	r := newTestRouter(nil)
	req := domain.CommandRequest{
		Utterance: "tell me about this",
		Context:   domain.ContextDetails,
	}

	_, err := r.Route(context.Background(), req, ClassifyIntent("tell me about this"), domain.EntitySet{})

	if !errors.Is(err, domain.ErrContentIDRequired) {
		t.Errorf("err = %v, want ErrContentIDRequired", err)
	}
}

func TestRoute_DetailsContext_ContentNotFound(t *testing.T) {
	content := &mocks.ContentRepositoryMock{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ContentItem, error) {
			return nil, nil
		},
	}
	r := newTestRouter(content)
	req := domain.CommandRequest{
		Utterance: "describe it",
		Context:   domain.ContextDetails,
		ContentID: "missing",
	}

	_, err := r.Route(context.Background(), req, ClassifyIntent("describe it"), domain.EntitySet{})

	if !errors.Is(err, domain.ErrContentNotFound) {
		t.Errorf("err = %v, want ErrContentNotFound", err)
	}
}

func TestRoute_DetailsContext_AccessibilityFeatures(t *testing.T) {
	// An item with only audio description must list exactly that feature.
	content := &mocks.ContentRepositoryMock{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ContentItem, error) {
			return &domain.ContentItem{
				ID:               id,
				Title:            "Free Solo",
				AudioDescription: true,
			}, nil
		},
	}
	r := newTestRouter(content)

	resp := route(t, r, domain.CommandRequest{
		Utterance: "accessibility features",
		Context:   domain.ContextDetails,
		ContentID: "tt123",
	})

	if resp.Action != ActionAccessibility {
		t.Fatalf("action = %q, want %q", resp.Action, ActionAccessibility)
	}
	data, ok := resp.Data.(domain.AccessibilityData)
	if !ok {
		t.Fatalf("data type = %T, want AccessibilityData", resp.Data)
	}
	if !reflect.DeepEqual(data.Features, []string{"audio description"}) {
		t.Errorf("features = %v, want exactly [audio description]", data.Features)
	}
	if data.CanGenerate {
		t.Error("CanGenerate = true, want false when features exist")
	}
}

func TestRoute_DetailsContext_NoFeaturesOffersGeneration(t *testing.T) {
	content := &mocks.ContentRepositoryMock{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ContentItem, error) {
			return &domain.ContentItem{ID: id, Title: "Plain Movie"}, nil
		},
	}
	r := newTestRouter(content)

	resp := route(t, r, domain.CommandRequest{
		Utterance: "accessibility features",
		Context:   domain.ContextDetails,
		ContentID: "tt123",
	})

	data, ok := resp.Data.(domain.AccessibilityData)
	if !ok {
		t.Fatalf("data type = %T, want AccessibilityData", resp.Data)
	}
	if len(data.Features) != 0 {
		t.Errorf("features = %v, want none", data.Features)
	}
	if !data.CanGenerate {
		t.Error("CanGenerate = false, want true when no features are listed")
	}
}

func TestRoute_DetailsContext_Rating(t *testing.T) {
	content := &mocks.ContentRepositoryMock{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.ContentItem, error) {
			return &domain.ContentItem{ID: id, Title: "Free Solo", VoteAverage: 8.2, VoteCount: 431}, nil
		},
	}
	r := newTestRouter(content)

	resp := route(t, r, domain.CommandRequest{
		Utterance: "how good is it",
		Context:   domain.ContextDetails,
		ContentID: "tt123",
	})

	data, ok := resp.Data.(domain.RatingData)
	if !ok {
		t.Fatalf("data type = %T, want RatingData", resp.Data)
	}
	if data.Average != 8.2 || data.Votes != 431 {
		t.Errorf("rating = %.1f/%d, want 8.2/431", data.Average, data.Votes)
	}
}

func TestRoute_NavigationContext(t *testing.T) {
	r := newTestRouter(nil)

	tests := []struct {
		utterance   string
		action      string
		destination string
	}{
		{"go home", ActionNavigateHome, "home"},
		{"open the search page", ActionNavigateSearch, "search"},
		{"my movies please", ActionNavigateFavs, "favorites"},
		{"accessibility options", ActionNavigateConfig, "settings"},
		{"what can i say", ActionHelp, "help"},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			resp := route(t, r, domain.CommandRequest{
				Utterance: tt.utterance,
				Context:   domain.ContextNavigation,
			})

			if resp.Action != tt.action {
				t.Errorf("action = %q, want %q", resp.Action, tt.action)
			}
			data, ok := resp.Data.(domain.NavigationData)
			if !ok {
				t.Fatalf("data type = %T, want NavigationData", resp.Data)
			}
			if data.Destination != tt.destination {
				t.Errorf("destination = %q, want %q", data.Destination, tt.destination)
			}
			if len(resp.Instructions) == 0 {
				t.Error("expected navigation instructions, got none")
			}
		})
	}
}

func TestRoute_UnrecognizedTextIsNotAnError(t *testing.T) {
	r := newTestRouter(nil)

	for _, cctx := range []domain.CommandContext{
		domain.ContextSearch,
		domain.ContextNavigation,
	} {
		resp := route(t, r, domain.CommandRequest{
			Utterance: "xyzzy quux",
			Context:   cctx,
		})

		if resp.Action != ActionUnknown {
			t.Errorf("context %s: action = %q, want %q", cctx, resp.Action, ActionUnknown)
		}
		if resp.Text == "" || resp.Speech == "" {
			t.Errorf("context %s: unknown response must carry help text", cctx)
		}
	}
}

func TestRoute_UnknownContextFallsBackToNavigation(t *testing.T) {
	r := newTestRouter(nil)

	resp := route(t, r, domain.CommandRequest{
		Utterance: "go home",
		Context:   domain.CommandContext("bogus"),
	})

	if resp.Action != ActionNavigateHome {
		t.Errorf("action = %q, want navigation fallback to handle the command", resp.Action)
	}
}
