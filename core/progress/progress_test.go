package progress

import "testing"

func TestNew(t *testing.T) {
	prog := New("c1", "u1")

	if prog.ID == "" {
		t.Error("expected a generated id")
	}
	if prog.CourseID != "c1" || prog.UserID != "u1" {
		t.Errorf("record scoped to course[%s] user[%s]", prog.CourseID, prog.UserID)
	}

	// The completed set must start empty but present, so the document stores
	// an array and not a null.
	if prog.CompletedVideos == nil {
		t.Error("expected an empty completed list, got nil")
	}
	if len(prog.CompletedVideos) != 0 {
		t.Errorf("expected no completed videos, got %v", prog.CompletedVideos)
	}

	if prog.CreatedAt.IsZero() || prog.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}
