package recommender

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(context.Background(), zap.NewNop(), server.URL, 0), server
}

func TestUploadResumeSendsMultipart(t *testing.T) {
	var gotTopK, gotContents, gotName string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected a multipart request: %v", err)
		}

		gotTopK = r.FormValue("top_k")

		file, header, err := r.FormFile("resume")
		if err != nil {
			t.Fatalf("expected a resume part: %v", err)
		}
		defer file.Close()

		gotName = header.Filename
		data, _ := io.ReadAll(file)
		gotContents = string(data)

		json.NewEncoder(w).Encode(Recommendation{InputType: "file"})
	})

	rec, err := client.UploadResume("resume.txt", strings.NewReader("golang kubernetes"), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotTopK != "7" {
		t.Fatalf("expected top_k as string-encoded 7, got %q", gotTopK)
	}
	if gotName != "resume.txt" {
		t.Fatalf("unexpected file name: %q", gotName)
	}
	if gotContents != "golang kubernetes" {
		t.Fatalf("unexpected file contents: %q", gotContents)
	}
	if rec.InputType != "file" {
		t.Fatalf("unexpected response: %+v", rec)
	}
}

func TestRecommendTextSendsJSON(t *testing.T) {
	var payload map[string]any

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommend-text" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}

		json.NewEncoder(w).Encode(Recommendation{
			InputType: "text",
			Profile:   &Profile{WordCount: 2},
			Jobs:      []*JobMatch{{Rank: 1, Title: "Go Developer", MatchScore: 88.4}},
		})
	})

	rec, err := client.RecommendText("go developer", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload["text"] != "go developer" {
		t.Fatalf("unexpected text payload: %v", payload["text"])
	}
	if payload["top_k"] != float64(5) {
		t.Fatalf("expected numeric top_k, got %v", payload["top_k"])
	}
	if len(rec.Jobs) != 1 || rec.Jobs[0].Rank != 1 {
		t.Fatalf("unexpected jobs: %+v", rec.Jobs)
	}
}

func TestStructuredErrorBecomesRequestError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Only PDF and TXT files are supported"})
	})

	_, err := client.RecommendText("anything", 5)
	if err == nil {
		t.Fatalf("expected an error")
	}

	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("expected a RequestError, got %T: %v", err, err)
	}
	if reqErr.Message != "Only PDF and TXT files are supported" {
		t.Fatalf("expected the backend message verbatim, got %q", reqErr.Message)
	}
	if reqErr.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", reqErr.Status)
	}
}

func TestUnstructuredFailureIsPlainError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.RecommendText("anything", 5)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := err.(*RequestError); ok {
		t.Fatalf("expected a plain error, got a RequestError")
	}
}

func TestListJobsDecodesLooseRows(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"job_id": 1, "title": "Go Developer", "company": "Acme", "skills": "go, sql"},
			{"job_id": 2, "title": "Analyst", "salary_range": null}
		]`))
	})

	records, err := client.ListJobs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].JobID != "1" {
		t.Fatalf("expected numeric job_id rendered as text, got %q", records[0].JobID)
	}
	if records[1].Company != "" || records[1].SalaryRange != "" {
		t.Fatalf("expected absent and null fields to decode empty, got %+v", records[1])
	}
}

func TestGetHealth(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Health{Status: "ok", Model: "all-MiniLM-L6-v2"})
	})

	health, err := client.GetHealth()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if health.Status != "ok" || health.Model != "all-MiniLM-L6-v2" {
		t.Fatalf("unexpected health report: %+v", health)
	}
}

func TestRequestsCarryCorrelationID(t *testing.T) {
	var requestID string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	})

	if _, err := client.ListJobs(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requestID == "" {
		t.Fatalf("expected an X-Request-ID header")
	}
}
