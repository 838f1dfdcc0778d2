// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package celebrity_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/telugucine/internal/core/celebrity"
	"github.com/taibuivan/telugucine/internal/platform/ctxutil"
	"github.com/taibuivan/telugucine/internal/platform/sec"
)

// serve runs a request through the celebrity router with an optional role.
func serve(t *testing.T, f *fixture, method, target, body string, role sec.UserRole) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if role != "" {
		claims := &sec.AuthClaims{UserID: "editor-1", Role: string(role)}
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	celebrity.NewHandler(f.service).Routes().ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_PublicRoutes covers profile and filmography lookups by slug.
*/
func TestHandler_PublicRoutes(t *testing.T) {
	f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue(), nagarjuna())

	t.Run("profile", func(t *testing.T) {
		recorder := serve(t, f, http.MethodGet, "/teja", "", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		var envelope struct {
			Data celebrity.Celebrity `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "Teja", envelope.Data.Name)
	})

	t.Run("filmography", func(t *testing.T) {
		recorder := serve(t, f, http.MethodGet, "/teja/filmography", "", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		body := recorder.Body.String()
		assert.Contains(t, body, `"role":"director"`)
		assert.Contains(t, body, `"primary_role":"director"`)
		assert.Contains(t, body, `"movies":[]`)
	})

	t.Run("unknown_slug", func(t *testing.T) {
		recorder := serve(t, f, http.MethodGet, "/prabhas", "", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"code":"NOT_FOUND"`)
	})

	t.Run("list", func(t *testing.T) {
		recorder := serve(t, f, http.MethodGet, "/?q=nagarjuna", "", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"Akkineni Nagarjuna"`)
	})
}

/*
TestHandler_CurationRoutes checks role gating on write endpoints.
*/
func TestHandler_CurationRoutes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		role   sec.UserRole
		status int
	}{
		{"create_anonymous", http.MethodPost, "/", `{"name":"Teja"}`, "", http.StatusUnauthorized},
		{"create_member", http.MethodPost, "/", `{"name":"Teja"}`, sec.RoleMember, http.StatusForbidden},
		{"create_editor", http.MethodPost, "/", `{"name":"Teja"}`, sec.RoleEditor, http.StatusCreated},
		{"create_invalid_json", http.MethodPost, "/", `{`, sec.RoleEditor, http.StatusBadRequest},
		{"update_editor", http.MethodPatch, "/" + nagarjuna().ID, `{"name":"Nagarjuna"}`, sec.RoleEditor, http.StatusOK},
		{"delete_editor", http.MethodDelete, "/" + nagarjuna().ID, "", sec.RoleEditor, http.StatusForbidden},
		{"reconcile_editor", http.MethodPost, "/" + nagarjuna().ID + "/reconcile", "", sec.RoleEditor, http.StatusForbidden},
		{"reconcile_admin", http.MethodPost, "/" + nagarjuna().ID + "/reconcile", "", sec.RoleAdmin, http.StatusOK},
		{"reconcile_unknown", http.MethodPost, "/missing/reconcile", "", sec.RoleAdmin, http.StatusNotFound},
		{"delete_admin", http.MethodDelete, "/" + nagarjuna().ID, "", sec.RoleAdmin, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, celebrity.DefaultOptions(), nil, nagarjuna())

			recorder := serve(t, f, tt.method, tt.target, tt.body, tt.role)

			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}
