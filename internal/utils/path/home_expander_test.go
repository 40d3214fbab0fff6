package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/scriptdash/internal/utils/path"
)

const testHomeDirectoryConstant = "/home/student"

func TestHomeExpanderExpand(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})

	testCases := []struct {
		name         string
		candidate    string
		expectedPath string
	}{
		{name: "tilde_only", candidate: "~", expectedPath: testHomeDirectoryConstant},
		{name: "tilde_prefix", candidate: "~/cursos/poo", expectedPath: filepath.Join(testHomeDirectoryConstant, "cursos", "poo")},
		{name: "relative", candidate: "Unidad 1", expectedPath: "Unidad 1"},
		{name: "empty", candidate: "", expectedPath: ""},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.candidate))
		})
	}
}

func TestHomeExpanderKeepsTildeWhenHomeUnavailable(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", errors.New("no home")
	})
	require.Equal(testInstance, "~/tareas.json", expander.Expand("~/tareas.json"))
}

func TestHomeExpanderResolveWithin(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})

	baseDirectory := filepath.Join(string(filepath.Separator), "srv", "poo")

	require.Equal(testInstance, filepath.Join(baseDirectory, "Unidad 1"), expander.ResolveWithin(baseDirectory, " Unidad 1 "))
	require.Equal(testInstance, filepath.Join(testHomeDirectoryConstant, "u2"), expander.ResolveWithin(baseDirectory, "~/u2"))
	absolutePath := filepath.Join(string(filepath.Separator), "opt", "u3")
	require.Equal(testInstance, absolutePath, expander.ResolveWithin(baseDirectory, absolutePath))
	require.Equal(testInstance, filepath.Join(testHomeDirectoryConstant, "poo", "x"), expander.ResolveWithin("~/poo", "x"))
}
