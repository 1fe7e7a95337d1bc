package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// RunExtension attempts to find and execute an external sipc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The resolved global settings are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "sipc-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		Logger().Debug("extension not found", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = append(os.Environ(),
		EnvStore+"="+setting(*storeKind, EnvStore, "dir"),
		EnvStoreDir+"="+setting(*storeDir, EnvStoreDir, ".sipc"),
		EnvDatabaseURL+"="+setting(*databaseURL, EnvDatabaseURL, ""),
		EnvVerbose+"="+strconv.FormatBool(verbose()),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
