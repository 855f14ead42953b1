package input

import "testing"

func TestControllerStartsInUploadMode(t *testing.T) {
	c := NewController()
	if c.Mode() != ModeUpload {
		t.Fatalf("expected initial mode upload, got %s", c.Mode())
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	c := NewController()
	if err := c.SetFile(FileInput{Name: "resume.pdf", Size: 10, Path: "/tmp/resume.pdf"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Select(ModeUpload)
	c.Select(ModeUpload)

	if c.Mode() != ModeUpload {
		t.Fatalf("expected mode to stay upload")
	}
	if c.File() == nil {
		t.Fatalf("expected held file to survive re-selecting the active mode")
	}
}

func TestSwitchDiscardsPendingValue(t *testing.T) {
	c := NewController()
	if err := c.SetFile(FileInput{Name: "resume.txt", Size: 5, Path: "/tmp/resume.txt"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Select(ModeText)
	if c.File() != nil {
		t.Fatalf("expected pending file to be discarded on switch to text")
	}

	c.SetText("go developer")
	c.Select(ModeUpload)
	c.Select(ModeText)
	if c.Candidate() != nil {
		t.Fatalf("expected pending text to be discarded by the round trip")
	}
}

func TestRejectedFileKeepsPreviousSelection(t *testing.T) {
	c := NewController()
	if err := c.SetFile(FileInput{Name: "resume.pdf", Size: 10, Path: "/tmp/resume.pdf"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.SetFile(FileInput{Name: "resume.docx", Size: 10, Path: "/tmp/resume.docx"}); err == nil {
		t.Fatalf("expected docx to be rejected")
	}

	held := c.File()
	if held == nil || held.Name != "resume.pdf" {
		t.Fatalf("expected previous selection to remain authoritative, got %+v", held)
	}
}

func TestCandidateSnapshotsActiveVariant(t *testing.T) {
	c := NewController()
	if c.Candidate() != nil {
		t.Fatalf("expected no candidate before any input")
	}

	c.Select(ModeText)
	c.SetText("kubernetes, terraform")

	candidate := c.Candidate()
	if candidate == nil || candidate.Kind != ModeText || candidate.Text != "kubernetes, terraform" {
		t.Fatalf("unexpected candidate: %+v", candidate)
	}
}

func TestDiscardDropsActiveValueOnly(t *testing.T) {
	c := NewController()
	if err := c.SetFile(FileInput{Name: "resume.pdf", Size: 10, Path: "/tmp/resume.pdf"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Discard()
	if c.Candidate() != nil {
		t.Fatalf("expected candidate to be discarded after successful submit")
	}
	if c.Mode() != ModeUpload {
		t.Fatalf("expected mode to be untouched by discard")
	}
}
