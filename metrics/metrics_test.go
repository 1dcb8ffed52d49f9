// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.IncrementBrowsersRegistered()
	m.IncrementProblemsCreated()
	m.IncrementProblemsCreated()
	m.IncrementVotesCast()
	m.IncrementDuplicateVotes()
	m.AddVotesCleared(5)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BrowsersRegistered))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProblemsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VotesCast))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DuplicateVotes))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.VotesCleared))
}

func TestNew_IndependentRegistries(t *testing.T) {
	// Separate instances must not collide on registration
	a := New()
	b := New()

	a.IncrementVotesCast()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.VotesCast))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.VotesCast))
}

func TestInstrument(t *testing.T) {
	m := New()

	h := m.Instrument("POST /votes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("POST", "/votes", nil))
	assert.Equal(t, http.StatusConflict, w.Code)

	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))

	w = httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `ineedasolution_http_request_duration_seconds_count{code="409",route="POST /votes"} 1`), body)
	assert.Contains(t, body, "ineedasolution_votes_cast_total")
}
