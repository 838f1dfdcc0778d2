// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/telugucine/internal/core/audit"
	"github.com/taibuivan/telugucine/internal/core/movie"
	"github.com/taibuivan/telugucine/internal/core/movie/movietest"
	"github.com/taibuivan/telugucine/internal/platform/ctxutil"
	"github.com/taibuivan/telugucine/internal/platform/sec"
	"github.com/taibuivan/telugucine/pkg/pointer"
)

// # Fixtures

func catalogue() []*movie.Movie {
	return []*movie.Movie{
		{ID: "m01", Title: "Baahubali", Director: pointer.To("S. S. Rajamouli"), Hero: pointer.To("Prabhas")},
		{ID: "m02", Title: "Eega", Director: pointer.To("SS Rajamouli"), MusicDirector: pointer.To("M. M. Keeravani")},
		{ID: "m03", Title: "Magadheera", Director: pointer.To("S.S. Rajamouli"), MusicDirector: pointer.To("M. M. Keeravaani")},
		{ID: "m04", Title: "RRR", Director: pointer.To("S. S. Rajamouli"), Hero: pointer.To("Ram Charan")},
		{ID: "m05", Title: "Devadasu", Hero: pointer.To("Ram")},
		{ID: "m06", Title: "Nijam", Director: pointer.To("Teja"), Hero: pointer.To("Ravi Teja")},
	}
}

func newService(repository movie.Repository, options audit.Options) *audit.Service {
	return audit.NewService(repository, options, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type failingScan struct {
	*movietest.Repository
}

func (failingScan) Scan(context.Context, string, int) ([]*movie.Movie, error) {
	return nil, errors.New("connection reset")
}

// # Service

/*
TestService_Run checks every finding type over a small catalogue scanned in
several pages.
*/
func TestService_Run(t *testing.T) {
	options := audit.DefaultOptions()
	options.BatchSize = 2
	service := newService(movietest.New(catalogue()...), options)

	report, err := service.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, report.MoviesScanned)
	assert.Equal(t, 10, report.Spellings)
	assert.InDelta(t, 0.92, report.Threshold, 1e-6)

	t.Run("exact_groups", func(t *testing.T) {
		require.Len(t, report.ExactGroups, 1)
		group := report.ExactGroups[0]

		assert.Equal(t, "ssrajamouli", group.Key)
		require.Len(t, group.Spellings, 3)
		assert.Equal(t, audit.Spelling{Name: "S. S. Rajamouli", Movies: 2, Fields: []movie.Field{movie.FieldDirector}}, group.Spellings[0])
		assert.Equal(t, "S.S. Rajamouli", group.Spellings[1].Name)
		assert.Equal(t, "SS Rajamouli", group.Spellings[2].Name)
	})

	t.Run("near_pairs", func(t *testing.T) {
		require.Len(t, report.NearPairs, 1)
		pair := report.NearPairs[0]

		assert.Equal(t, "M. M. Keeravani", pair.Left.Name)
		assert.Equal(t, "M. M. Keeravaani", pair.Right.Name)
		assert.GreaterOrEqual(t, pair.Similarity, float32(0.92))
		assert.Equal(t, []movie.Field{movie.FieldMusicDirector}, pair.Left.Fields)
	})

	t.Run("under_matches", func(t *testing.T) {
		require.Len(t, report.UnderMatches, 2)
		assert.False(t, report.UnderMatchesTruncated)

		assert.Equal(t, audit.UnderMatch{
			Name: "Ram", Value: "Ram Charan", Field: movie.FieldHero,
			Movies: 1, ExampleID: "m04", ExampleTitle: "RRR",
		}, report.UnderMatches[0])
		assert.Equal(t, "Teja", report.UnderMatches[1].Name)
		assert.Equal(t, "Ravi Teja", report.UnderMatches[1].Value)
	})
}

/*
TestService_RunWith_Overrides checks per-run thresholds and caps.
*/
func TestService_RunWith_Overrides(t *testing.T) {
	service := newService(movietest.New(catalogue()...), audit.DefaultOptions())

	options := service.Options()
	options.Similarity = 0.999
	options.MaxUnderMatches = 1

	report, err := service.RunWith(context.Background(), options)
	require.NoError(t, err)

	assert.Empty(t, report.NearPairs)
	assert.Len(t, report.UnderMatches, 1)
	assert.True(t, report.UnderMatchesTruncated)
}

/*
TestService_Run_EmptyCatalogue checks that an empty scan yields empty, non-nil lists.
*/
func TestService_Run_EmptyCatalogue(t *testing.T) {
	report, err := newService(movietest.New(), audit.DefaultOptions()).Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report.MoviesScanned)
	assert.NotNil(t, report.ExactGroups)
	assert.NotNil(t, report.NearPairs)
	assert.NotNil(t, report.UnderMatches)
}

/*
TestService_Run_Failures covers cancellation and storage errors.
*/
func TestService_Run_Failures(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newService(movietest.New(catalogue()...), audit.DefaultOptions()).Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("scan_error", func(t *testing.T) {
		_, err := newService(failingScan{movietest.New()}, audit.DefaultOptions()).Run(context.Background())

		assert.EqualError(t, err, "connection reset")
	})
}

// # Handler

/*
TestHandler_Duplicates checks admin gating and query validation.
*/
func TestHandler_Duplicates(t *testing.T) {
	tests := []struct {
		name   string
		target string
		role   sec.UserRole
		status int
	}{
		{"anonymous", "/duplicates", "", http.StatusUnauthorized},
		{"editor", "/duplicates", sec.RoleEditor, http.StatusForbidden},
		{"admin", "/duplicates", sec.RoleAdmin, http.StatusOK},
		{"admin_similarity", "/duplicates?similarity=0.8&limit=10", sec.RoleAdmin, http.StatusOK},
		{"similarity_out_of_range", "/duplicates?similarity=1.5", sec.RoleAdmin, http.StatusBadRequest},
		{"similarity_not_a_number", "/duplicates?similarity=high", sec.RoleAdmin, http.StatusBadRequest},
		{"similarity_nan", "/duplicates?similarity=NaN", sec.RoleAdmin, http.StatusBadRequest},
		{"limit_zero", "/duplicates?limit=0", sec.RoleAdmin, http.StatusBadRequest},
	}

	handler := audit.NewHandler(newService(movietest.New(catalogue()...), audit.DefaultOptions())).Routes()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.role != "" {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{Role: string(tt.role)}))
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}
