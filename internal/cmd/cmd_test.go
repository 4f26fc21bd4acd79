package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/resale-admin/cli/internal/config"
	"github.com/gravitrone/resale-admin/cli/internal/resource"
)

// loggedIn points the commands at handler with a token from the environment.
func loggedIn(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RESALE_TOKEN", "tok_test")
	t.Setenv("RESALE_BASE_URL", srv.URL)
}

func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeData(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func TestLoginCmdRejectsEmptyEmail(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := run(t, LoginCmd(), "\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}

func TestLoginCmdSavesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body["email"])
		assert.Equal(t, "s3cret pass", body["password"])

		writeData(w, map[string]any{
			"token": "jwt-1",
			"user":  map[string]any{"id": "u1", "name": "Admin", "role": "admin"},
		})
	}))
	t.Cleanup(srv.Close)
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := run(t, LoginCmd(), "admin@example.com\ns3cret pass\n", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "logged in as Admin")

	info, err := os.Stat(filepath.Join(home, ".resale", "config"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "jwt-1", cfg.Token)
	assert.Equal(t, srv.URL, cfg.BaseURL)
	assert.Equal(t, "admin@example.com", cfg.Email)
	assert.Equal(t, "admin", cfg.Role)
}

func TestLoginCmdShowsBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("HOME", t.TempDir())

	_, err := run(t, LoginCmd(), "admin@example.com\nwrong\n", "--base-url", srv.URL)
	require.Error(t, err)
	assert.Equal(t, "login failed: Invalid credentials", err.Error())
}

func loginServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeData(w, map[string]any{
			"token": "jwt-new",
			"user":  map[string]any{"id": "u1", "name": "Admin", "role": "admin"},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginCmdKeepsSavedSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RESALE_BASE_URL", "")
	var hits atomic.Int32
	srv := loginServer(t, &hits)

	saved := &config.Config{Token: "jwt-old", BaseURL: srv.URL, PageSize: 50, LogLevel: "debug", Theme: "mono"}
	require.NoError(t, saved.Save())

	_, err := run(t, LoginCmd(), "admin@example.com\npw\n")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	cfg, err := config.Stored()
	require.NoError(t, err)
	assert.Equal(t, "jwt-new", cfg.Token)
	assert.Equal(t, srv.URL, cfg.BaseURL)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "mono", cfg.Theme)

	other := loginServer(t, &hits)
	_, err = run(t, LoginCmd(), "admin@example.com\npw\n", "--base-url", other.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())

	cfg, err = config.Stored()
	require.NoError(t, err)
	assert.Equal(t, other.URL, cfg.BaseURL)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoginCmdPrefersEnvironmentBaseURLOverSaved(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var hits atomic.Int32
	srv := loginServer(t, &hits)

	require.NoError(t, (&config.Config{BaseURL: "http://127.0.0.1:1"}).Save())
	t.Setenv("RESALE_BASE_URL", srv.URL)

	_, err := run(t, LoginCmd(), "admin@example.com\npw\n")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	cfg, err := config.Stored()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:1", cfg.BaseURL)
}

func TestLoginReadsPasswordFromNonTerminalFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RESALE_BASE_URL", "")
	var hits atomic.Int32
	srv := loginServer(t, &hits)

	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte("admin@example.com\npw\n"), 0600))
	in, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = in.Close() })

	var out bytes.Buffer
	require.NoError(t, RunInteractiveLogin(context.Background(), in, &out, srv.URL))
	assert.Contains(t, out.String(), "logged in as Admin")
	assert.Equal(t, int32(1), hits.Load())
}

func TestListCmdRejectsUnknownTheme(t *testing.T) {
	var hits atomic.Int32
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) { hits.Add(1) })
	t.Setenv("RESALE_THEME", "neon")

	_, err := run(t, ListCmd(), "", "orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "neon"`)
	assert.Zero(t, hits.Load())
}

func TestListCmdNotLoggedIn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RESALE_TOKEN", "")

	_, err := run(t, ListCmd(), "", "orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestListCmdPrintsFilteredPage(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok_test", r.Header.Get("Authorization"))
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		writeData(w, []map[string]any{
			{"id": "o1", "orderNumber": "BO-1001", "status": "pending", "product": map[string]any{"name": "iPhone 13"}},
			{"id": "o2", "orderNumber": "BO-1002", "status": "pending", "product": map[string]any{"name": "MacBook Air"}, "pricing": map[string]any{"finalPrice": 45000}},
		})
	})

	out, err := run(t, ListCmd(), "", "orders", "--filter", "status=pending", "--search", "macbook")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy Orders")
	assert.Contains(t, out, "BO-1002")
	assert.Contains(t, out, "₹45,000")
	assert.NotContains(t, out, "BO-1001")
	assert.Contains(t, out, "1 of 2 · page 1/1")
	assert.Contains(t, out, "Orders: 2")
}

func TestListCmdSampleListNeedsNoBackend(t *testing.T) {
	var calls atomic.Int32
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	out, err := run(t, ListCmd(), "", "leads", "--page-size", "2", "--page", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "6 of 6 · page 3/3")
	assert.Contains(t, out, "Ananya Das")
	assert.Contains(t, out, "Sample data")
	assert.Zero(t, calls.Load())
}

func TestListCmdNoMatches(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {})

	out, err := run(t, ListCmd(), "", "leads", "--search", "nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "no records match the search and filters")
	assert.Contains(t, out, "0 of 6")
}

func TestListCmdRejectsBadInput(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	_, err := run(t, ListCmd(), "", "orders", "--filter", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid filter "status"`)

	_, err = run(t, ListCmd(), "", "widgets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown list "widgets"`)

	_, err = run(t, ListCmd(), "", "orders", "--filter", "colour=red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown filter "colour"`)
}

func TestReportCmd(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders":
			writeData(w, []map[string]any{{"id": "o1", "status": "completed", "pricing": map[string]any{"finalPrice": 20000}}})
		case "/users", "/products":
			writeData(w, []map[string]any{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	out, err := run(t, ReportCmd(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Resale admin report\n"))
	assert.Contains(t, out, "Total payout")
	assert.Contains(t, out, "₹20,000")
}

func TestReportCmdFailure(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"message":"boom"}`))
			return
		}
		writeData(w, []map[string]any{})
	})

	_, err := run(t, ReportCmd(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load users")
}

func TestUploadCmd(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload/image", r.URL.Path)
		file, header, err := r.FormFile("image")
		if assert.NoError(t, err) {
			defer file.Close()
			assert.Equal(t, "phone.png", header.Filename)
		}
		writeData(w, map[string]any{"url": "https://cdn.example.com/phone.png"})
	})

	path := filepath.Join(t.TempDir(), "phone.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG"), 0600))

	out, err := run(t, UploadCmd(), "", path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/phone.png\n", out)
}

func TestUploadCmdMissingFile(t *testing.T) {
	_, err := run(t, UploadCmd(), "", filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open image")
}

func TestOrdersStatusCmd(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/orders/o1/status", r.URL.Path)
		writeData(w, map[string]any{"id": "o1", "orderNumber": "BO-1001", "status": "picked"})
	})

	out, err := run(t, OrdersCmd(), "", "status", "o1", "Picked")
	require.NoError(t, err)
	assert.Equal(t, "order BO-1001 is now picked\n", out)
}

func TestOrdersStatusCmdRejectsUnknownStatus(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	_, err := run(t, OrdersCmd(), "", "status", "o1", "teleported")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Status (oneof)")
}

func TestDeleteCmd(t *testing.T) {
	var deleted atomic.Bool
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/defects/d1", r.URL.Path)
		deleted.Store(true)
		writeData(w, nil)
	})

	out, err := run(t, DeleteCmd(), "n\n", "defects", "d1")
	require.NoError(t, err)
	assert.Contains(t, out, "aborted")
	assert.False(t, deleted.Load())

	out, err = run(t, DeleteCmd(), "y\n", "defects", "d1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted defects d1")
	assert.True(t, deleted.Load())
}

func TestDeleteCmdUnsupportedList(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := run(t, DeleteCmd(), "", "leads", "L-1001", "--yes")
	require.Error(t, err)
	assert.ErrorIs(t, err, resource.ErrUnsupported)
}

func TestCreateCmdPostsYAMLPayload(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "iPhone 15", body["name"])
		assert.Equal(t, "c1", body["category"])
		assert.Equal(t, float64(42000), body["basePrice"])
		assert.Len(t, body["variants"], 2)

		writeData(w, map[string]any{"id": "p9", "name": "iPhone 15"})
	})

	path := filepath.Join(t.TempDir(), "product.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: iPhone 15
category: c1
basePrice: 42000
variants:
  - name: 128GB
    price: 42000
  - name: 256GB
    price: 48000
`), 0600))

	out, err := run(t, CreateCmd(), "", "products", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "created products iPhone 15\n", out)
}

func TestUpdateCmdReadsJSONFromStdin(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/u1", r.URL.Path)
		writeData(w, map[string]any{"id": "u1", "name": "Asha", "role": "staff"})
	})

	stdin := `{"name": "Asha", "email": "asha@example.com", "role": "staff", "isActive": true}`
	out, err := run(t, UpdateCmd(), stdin, "users", "u1", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "updated users Asha\n", out)
}

func TestCreateCmdValidatesBeforeSending(t *testing.T) {
	var hits atomic.Int32
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) { hits.Add(1) })

	_, err := run(t, CreateCmd(), "section: Screen\ndeductionPercent: 120\n", "defects", "-f", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
	assert.Contains(t, err.Error(), "Name (required)")
	assert.Contains(t, err.Error(), "DeductionPercent (lte)")

	_, err = run(t, CreateCmd(), "name: Cracked\nsection: Screen\ncolour: red\n", "defects", "-f", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payload")
	assert.Contains(t, err.Error(), "colour")

	_, err = run(t, CreateCmd(), "", "defects", "-f", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload is empty")

	assert.Zero(t, hits.Load())
}

func TestCreateCmdUnsupportedList(t *testing.T) {
	loggedIn(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := run(t, CreateCmd(), "status: pending\n", "orders", "-f", "-")
	assert.ErrorIs(t, err, resource.ErrUnsupported)

	_, err = run(t, UpdateCmd(), "name: x\n", "leads", "L-1001", "-f", "-")
	assert.ErrorIs(t, err, resource.ErrUnsupported)
}

func TestCreateCmdRequiresPayloadFlag(t *testing.T) {
	_, err := run(t, CreateCmd(), "", "products")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"file" not set`)
}

func TestParseFilters(t *testing.T) {
	got, err := parseFilters([]string{"status=pending", " city = Pune "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"status": "pending", "city": "Pune"}, got)

	_, err = parseFilters([]string{"=x"})
	assert.Error(t, err)
}
