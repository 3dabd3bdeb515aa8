package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/store"
	appErrors "github.com/noah-isme/student-records-api/pkg/errors"
)

func TestSubjectCreateAndListGrouping(t *testing.T) {
	svc := NewSubjectService(store.New(), validator.New(), zap.NewNop())

	for _, req := range []CreateSubjectRequest{
		{Code: "MA201", Title: "Calculus II", Credits: 3, Semester: 2},
		{Code: "CS102", Title: "Data Structures", Credits: 4, Semester: 1},
		{Code: "CS101", Title: "Programming in C", Credits: 4, Semester: 1},
	} {
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	groups := svc.ListBySemester(context.Background())
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].Semester)
	assert.Equal(t, "CS101", groups[0].Subjects[0].Code)
	assert.Equal(t, "CS102", groups[0].Subjects[1].Code)
	assert.Equal(t, 2, groups[1].Semester)
}

func TestSubjectCreateDuplicateCode(t *testing.T) {
	svc := NewSubjectService(store.New(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateSubjectRequest{Code: "CS101", Title: "Programming", Credits: 4, Semester: 1})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateSubjectRequest{Code: "cs101", Title: "Other", Credits: 3, Semester: 1})
	assert.True(t, appErrors.Is(err, appErrors.ErrDuplicate))
}

func TestSubjectCreateValidation(t *testing.T) {
	svc := NewSubjectService(store.New(), validator.New(), zap.NewNop())

	for _, req := range []CreateSubjectRequest{
		{Title: "t", Credits: 4, Semester: 1},
		{Code: "CS101", Credits: 4, Semester: 1},
		{Code: "CS101", Title: "t", Credits: 0, Semester: 1},
		{Code: "CS101", Title: "t", Credits: 4, Semester: -1},
	} {
		_, err := svc.Create(context.Background(), req)
		assert.True(t, appErrors.Is(err, appErrors.ErrValidation), "request %+v must be rejected", req)
	}
}

func TestSubjectDeleteIdempotent(t *testing.T) {
	s := store.New()
	svc := NewSubjectService(s, validator.New(), zap.NewNop())

	subject, err := svc.Create(context.Background(), CreateSubjectRequest{Code: "CS101", Title: "Programming", Credits: 4, Semester: 1})
	require.NoError(t, err)

	svc.Delete(context.Background(), subject.ID)
	svc.Delete(context.Background(), subject.ID)
	svc.Delete(context.Background(), "never-existed")

	_, err = svc.Get(context.Background(), subject.ID)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
