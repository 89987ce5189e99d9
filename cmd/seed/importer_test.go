package main

import (
	"context"
	"strings"
	"testing"

	"github.com/ArowuTest/intern-dashboard/internal/repositories/memory"
	"github.com/ArowuTest/intern-dashboard/internal/services"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportInterns(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInternRepository()
	log, _ := test.NewNullLogger()

	csv := strings.Join([]string{
		"name,email,password,referralCode",
		"Ada Lovelace, ada@example.com,pw1,ada2025",
		"Alan Turing,alan@example.com,pw2,alan2025",
		"Ada Again,ada@example.com,pw3,ada-other",
		"Short,row",
		"Grace Hopper,grace@example.com,pw4,ada2025",
	}, "\n")

	result, err := importInterns(ctx, services.NewInternService(repo), strings.NewReader(csv), log)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Existing)
	assert.Equal(t, 2, result.Skipped) // short row and duplicate referral code

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ada@example.com", all[0].Email)
	assert.Equal(t, []string{"Bronze Badge", "Silver Badge", "Gold Badge"}, all[1].Rewards)
}

func TestImportInternsRejectsEmptyFile(t *testing.T) {
	log, _ := test.NewNullLogger()
	svc := services.NewInternService(memory.NewInternRepository())

	_, err := importInterns(context.Background(), svc, strings.NewReader("name,email,password,referralCode\n"), log)
	assert.Error(t, err)
}
