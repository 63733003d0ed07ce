package cmd

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/schemafix/internal/adapter"
	"github.com/mouse-blink/schemafix/internal/controller"
	"github.com/mouse-blink/schemafix/internal/domain"
	domainmocks "github.com/mouse-blink/schemafix/internal/domain/mocks"
)

func TestRootCmd_DefaultTarget(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Fix", domain.FixArgs{Target: domain.DefaultTarget}).Return(nil)

	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestRootCmd_StatsFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Fix", mock.MatchedBy(func(args domain.FixArgs) bool {
		return args.Target == domain.DefaultTarget && args.Stats
	})).Return(nil)

	cmd.SetArgs([]string{"--stats"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestRootCmd_RejectsPathFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	for _, args := range [][]string{{"--file", "other.sql"}, {"-f", "other.sql"}} {
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("Execute(%v) expected error, the target path is fixed", args)
		}
	}

	mockWorkflow.AssertNotCalled(t, "Fix", mock.Anything)
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"other.sql"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() expected error for positional argument")
	}

	mockWorkflow.AssertNotCalled(t, "Fix", mock.Anything)
}

func TestRootCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	boom := errors.New("boom")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Fix", mock.Anything).Return(boom)

	cmd.SetArgs([]string{})
	if err := cmd.Execute(); !errors.Is(err, boom) {
		t.Fatalf("Execute() error = %v, want %v", err, boom)
	}
}

func TestRootCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd error: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir error: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path := filepath.Join(dir, string(domain.DefaultTarget))
	content := "INSERT INTO partner_products (id, rating, price) VALUES (1, 4.8, 2.5);\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(adapter.NewLocalSQLFileAdapter(), domain.NewRewriter(), controller.NewSimpleUI(cmd))
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	want := "INSERT INTO partner_products (id price) VALUES (1, 4.8, 2.5);\n"
	if string(got) != want {
		t.Errorf("file content = %q, want %q", got, want)
	}

	if out.String() != controller.FixedMessage+"\n"+controller.RemovedMessage+"\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "schemafix" {
		t.Errorf("newRootCmd() Use = %v, want %v", cmd.Use, "schemafix")
	}
	if cmd.Short == "" {
		t.Error("newRootCmd() Short should not be empty")
	}

	if cmd.Flags().Lookup("file") != nil {
		t.Error("newRootCmd() must not accept a --file flag")
	}
	if cmd.Flags().Lookup("stats") == nil {
		t.Error("newRootCmd() missing --stats flag")
	}
}

func TestInit(t *testing.T) {
	if ui == nil {
		t.Error("init() ui is nil")
	}
	if sqlFileAdapter == nil {
		t.Error("init() sqlFileAdapter is nil")
	}
	if rewriter == nil {
		t.Error("init() rewriter is nil")
	}
	if workflow == nil {
		t.Error("init() workflow is nil")
	}
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		rootCmd.SetArgs([]string{})
		Execute()

		return
	}

	dir := t.TempDir()
	content := "INSERT INTO partner_products (id, rating_count, price) VALUES (1, 9, 2.5);\n"
	if err := os.WriteFile(filepath.Join(dir, string(domain.DefaultTarget)), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExecute_ProcessLevel_Success$")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Process exited with error: %v, output: %s", err, output)
	}

	for _, want := range []string{controller.FixedMessage, controller.RemovedMessage} {
		if !strings.Contains(string(output), want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}

	got, err := os.ReadFile(filepath.Join(dir, string(domain.DefaultTarget)))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if strings.Contains(string(got), "rating_count") {
		t.Errorf("rating_count still present: %s", got)
	}
}

func TestExecute_ProcessLevel_MissingFile(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		rootCmd.SetArgs([]string{})
		Execute()

		return
	}

	dir := t.TempDir()

	cmd := exec.Command(os.Args[0], "-test.run=^TestExecute_ProcessLevel_MissingFile$")
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected exec.ExitError, got %T (%v)", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("Expected exit code 1, got %d", exitErr.ExitCode())
	}

	if !strings.Contains(string(output), string(domain.DefaultTarget)) {
		t.Errorf("Expected error to name the target, got: %s", output)
	}
	if strings.Contains(string(output), controller.FixedMessage) {
		t.Errorf("Success message printed on failure: %s", output)
	}

	if _, statErr := os.Stat(filepath.Join(dir, string(domain.DefaultTarget))); statErr == nil {
		t.Error("target file was created on failure")
	}
}
