package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"interview-hub/internal/storage"

	"github.com/gofiber/fiber/v3"
)

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	_ = res.Body.Close()
	return res, raw
}

func decode(t *testing.T, raw []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
}

func TestAPI_SystemPromptRoundTrip(t *testing.T) {
	app := New(storage.NewMemory())

	res, raw := doJSON(t, app, http.MethodGet, "/api/system-prompt", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("get default: status %d", res.StatusCode)
	}
	var got map[string]string
	decode(t, raw, &got)
	if got["systemPrompt"] != "" {
		t.Fatalf("expected empty default prompt, got %q", got["systemPrompt"])
	}

	res, _ = doJSON(t, app, http.MethodPost, "/api/system-prompt", map[string]string{"systemPrompt": "Be kind."})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("set: status %d", res.StatusCode)
	}

	_, raw = doJSON(t, app, http.MethodGet, "/api/user/u1/system-prompt", nil)
	decode(t, raw, &got)
	if got["systemPrompt"] != "Be kind." {
		t.Fatalf("round trip mismatch: %q", got["systemPrompt"])
	}
}

func TestAPI_SystemPrompt_RejectsEmpty(t *testing.T) {
	app := New(storage.NewMemory())

	res, raw := doJSON(t, app, http.MethodPost, "/api/system-prompt", map[string]string{"systemPrompt": ""})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	var got map[string]string
	decode(t, raw, &got)
	if got["error"] == "" {
		t.Fatalf("expected error body, got %q", raw)
	}
}

func TestAPI_JobLifecycle(t *testing.T) {
	app := New(storage.NewMemory())

	res, raw := doJSON(t, app, http.MethodPost, "/api/jobs", map[string]string{
		"title":       "Backend Engineer",
		"company":     "Acme",
		"description": "Build Go services.",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d body %s", res.StatusCode, raw)
	}
	var created struct {
		ID       int64 `json:"id"`
		IsActive bool  `json:"isActive"`
	}
	decode(t, raw, &created)
	if created.IsActive {
		t.Fatalf("new job must be inactive")
	}
	if created.ID == 0 {
		t.Fatalf("expected nonzero id")
	}

	// Nothing active yet: the description endpoint falls back.
	_, raw = doJSON(t, app, http.MethodGet, "/api/user/u1/job-description", nil)
	var desc map[string]string
	decode(t, raw, &desc)
	if desc["jobDescription"] == "Build Go services." {
		t.Fatalf("description must not be served before activation")
	}

	res, _ = doJSON(t, app, http.MethodPost, "/api/jobs/"+strconv.FormatInt(created.ID, 10)+"/activate", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("activate: status %d", res.StatusCode)
	}

	_, raw = doJSON(t, app, http.MethodGet, "/api/user/u1/job-description", nil)
	decode(t, raw, &desc)
	if desc["jobDescription"] != "Build Go services." {
		t.Fatalf("expected active description, got %q", desc["jobDescription"])
	}

	res, _ = doJSON(t, app, http.MethodDelete, "/api/jobs/"+strconv.FormatInt(created.ID, 10), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("delete: status %d", res.StatusCode)
	}

	_, raw = doJSON(t, app, http.MethodGet, "/api/jobs", nil)
	var jobs []json.RawMessage
	decode(t, raw, &jobs)
	if len(jobs) != 0 {
		t.Fatalf("expected empty collection after delete, got %d", len(jobs))
	}
}

func TestAPI_CreateJob_MissingCompany(t *testing.T) {
	app := New(storage.NewMemory())

	res, raw := doJSON(t, app, http.MethodPost, "/api/jobs", map[string]string{
		"title":       "Backend Engineer",
		"description": "Build Go services.",
	})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", res.StatusCode, raw)
	}

	_, raw = doJSON(t, app, http.MethodGet, "/api/jobs", nil)
	var jobs []json.RawMessage
	decode(t, raw, &jobs)
	if len(jobs) != 0 {
		t.Fatalf("rejected creation must leave the collection unchanged, got %d", len(jobs))
	}
}

func TestAPI_InterviewFlowAndStats(t *testing.T) {
	app := New(storage.NewMemory())

	for _, title := range []string{"X", "Y"} {
		res, _ := doJSON(t, app, http.MethodPost, "/api/jobs", map[string]string{
			"title": title, "company": "Acme", "description": "d",
		})
		if res.StatusCode != http.StatusCreated {
			t.Fatalf("create %s: status %d", title, res.StatusCode)
		}
	}

	for _, uid := range []string{"u1", "u2"} {
		res, raw := doJSON(t, app, http.MethodPost, "/webhook/start-interview", map[string]string{
			"userId": uid, "userName": "User " + uid,
		})
		if res.StatusCode != http.StatusOK {
			t.Fatalf("start %s: status %d body %s", uid, res.StatusCode, raw)
		}
		var started map[string]any
		decode(t, raw, &started)
		if started["interviewActive"] != true {
			t.Fatalf("start must report interviewActive=true, got %v", started)
		}

		res, _ = doJSON(t, app, http.MethodPost, "/api/user/"+uid+"/complete-interview", nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("complete %s: status %d", uid, res.StatusCode)
		}
	}

	_, raw := doJSON(t, app, http.MethodGet, "/api/user/u1/interview-state", nil)
	var st struct {
		UserName            string `json:"userName"`
		InterviewActive     bool   `json:"interviewActive"`
		CompletedInterviews int    `json:"completedInterviews"`
	}
	decode(t, raw, &st)
	if st.InterviewActive {
		t.Fatalf("interview must be inactive after completion")
	}
	if st.CompletedInterviews != 1 {
		t.Fatalf("expected 1 completion, got %d", st.CompletedInterviews)
	}
	if st.UserName != "User u1" {
		t.Fatalf("expected stored userName, got %q", st.UserName)
	}

	_, raw = doJSON(t, app, http.MethodGet, "/api/stats", nil)
	var stats struct {
		TotalJobs       int `json:"totalJobs"`
		TotalUsers      int `json:"totalUsers"`
		TotalInterviews int `json:"totalInterviews"`
	}
	decode(t, raw, &stats)
	if stats.TotalJobs != 2 || stats.TotalUsers != 2 || stats.TotalInterviews != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestAPI_StartInterview_MissingUserID(t *testing.T) {
	app := New(storage.NewMemory())

	res, raw := doJSON(t, app, http.MethodPost, "/webhook/start-interview", map[string]string{"userName": "Alice"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body %s", res.StatusCode, raw)
	}
}

func TestAPI_StopInterview(t *testing.T) {
	app := New(storage.NewMemory())

	doJSON(t, app, http.MethodPost, "/webhook/start-interview", map[string]string{"userId": "u1"})

	res, raw := doJSON(t, app, http.MethodPost, "/webhook/stop-interview", map[string]string{"userId": "u1"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("stop: status %d", res.StatusCode)
	}
	var got map[string]any
	decode(t, raw, &got)
	if got["interviewActive"] != false {
		t.Fatalf("stop must report interviewActive=false, got %v", got)
	}
}

func TestAPI_InterviewState_UnknownUser(t *testing.T) {
	app := New(storage.NewMemory())

	res, raw := doJSON(t, app, http.MethodGet, "/api/user/ghost/interview-state", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("state: status %d", res.StatusCode)
	}
	var st map[string]any
	decode(t, raw, &st)
	if st["interviewActive"] != false {
		t.Fatalf("unknown user must default to inactive, got %v", st)
	}
}

func TestAPI_UnmatchedRoute(t *testing.T) {
	app := New(storage.NewMemory())

	res, raw := doJSON(t, app, http.MethodGet, "/api/nope", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	var got map[string]string
	decode(t, raw, &got)
	if got["error"] == "" {
		t.Fatalf("expected error body, got %q", raw)
	}
}

func TestAPI_HealthAndIndex(t *testing.T) {
	app := New(storage.NewMemory())

	res, raw := doJSON(t, app, http.MethodGet, "/api/health", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health: status %d", res.StatusCode)
	}
	var health map[string]any
	decode(t, raw, &health)
	if health["status"] != "ok" || health["version"] == "" || health["timestamp"] == "" {
		t.Fatalf("unexpected health body: %v", health)
	}

	res, raw = doJSON(t, app, http.MethodGet, "/", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("index: status %d", res.StatusCode)
	}
	var index struct {
		Endpoints []string `json:"endpoints"`
	}
	decode(t, raw, &index)
	if len(index.Endpoints) == 0 {
		t.Fatalf("index must enumerate endpoints")
	}
}
