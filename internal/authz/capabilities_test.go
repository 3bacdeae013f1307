package authz

import (
	"testing"

	"github.com/clowiiza1/pukkeconnect-backend/internal/models"
)

func TestResolverRoleHierarchy(t *testing.T) {
	t.Parallel()

	r, err := NewResolver()
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	tests := []struct {
		role string
		cap  Capability
		want bool
	}{
		{models.RoleStudent, QuizSubmit, true},
		{models.RoleStudent, RecommendationsRead, true},
		{models.RoleStudent, EventsTrack, true},
		{models.RoleStudent, QuizCreate, false},
		{models.RoleStudent, InterestsManageAny, false},
		{models.RoleSocietyAdmin, QuizCreate, true},
		{models.RoleSocietyAdmin, QuizSubmit, true},
		{models.RoleSocietyAdmin, InterestsManageAny, false},
		{models.RoleUniversityAdmin, InterestsManageAny, true},
		{models.RoleUniversityAdmin, InterestsCreate, true},
		{models.RoleUniversityAdmin, RecommendationsRead, true},
		{"visitor", RecommendationsRead, false},
	}
	for _, tt := range tests {
		if got := r.For(tt.role).Has(tt.cap); got != tt.want {
			t.Errorf("For(%q).Has(%q) = %v, want %v", tt.role, tt.cap, got, tt.want)
		}
	}
}
