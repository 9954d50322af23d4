package course

import "testing"

func TestHasStudent(t *testing.T) {
	crs := Course{StudentsEnrolled: []string{"u1", "u2"}}

	if !crs.HasStudent("u1") {
		t.Error("expected u1 to be enrolled")
	}
	if crs.HasStudent("u3") {
		t.Error("expected u3 to not be enrolled")
	}

	var empty Course
	if empty.HasStudent("u1") {
		t.Error("a course without students has no enrollments")
	}
}
