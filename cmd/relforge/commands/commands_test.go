package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/relforge/relforge/cmd/relforge/commands"
	"github.com/relforge/relforge/internal/adapters/telemetry"
	"github.com/relforge/relforge/internal/app"
	"github.com/relforge/relforge/internal/core/ports/mocks"
)

func newCLI(t *testing.T, ctrl *gomock.Controller) (*commands.CLI, *mocks.MockConfigLoader) {
	t.Helper()

	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(loader, logger, telemetry.NewNoOp())
	return commands.New(a), loader
}

func TestBuildDebians_UsesConfigFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, loader := newCLI(t, ctrl)
	loader.EXPECT().Load("/etc/release/custom.yaml").Return(nil, errors.New("no such file"))

	cli.SetArgs([]string{"build-debians", "-c", "/etc/release/custom.yaml", "orca"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestBuildDebians_DefaultConfigPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, loader := newCLI(t, ctrl)
	loader.EXPECT().Load("release.yaml").Return(nil, errors.New("no such file"))

	cli.SetArgs([]string{"build-debians"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
}

func TestTrigger_RequiresFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No loader expectation: the command must fail flag validation before any
	// configuration is read.
	cli, _ := newCLI(t, ctrl)
	cli.SetArgs([]string{"trigger"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
}

func TestTrigger_LoadFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, loader := newCLI(t, ctrl)
	loader.EXPECT().Load("release.yaml").Return(nil, errors.New("no such file"))

	cli.SetArgs([]string{
		"trigger",
		"--bucket", "builds",
		"--upload-path", "triggers/run.json",
		"--status-path", "/executions/42",
	})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(t, ctrl)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestUnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(t, ctrl)
	cli.SetArgs([]string{"frobnicate"})

	require.Error(t, cli.Execute(context.Background()))
}
