package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/errors"
)

type DebugCmd struct {
	DBPath *DebugDBPathCmd `cmd:"" name:"db-path" help:"Show the data file path."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump the raw value stored under a key."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Storage key (goals, habits, articles, hobby_entries, has_completed_onboarding)."`
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	known := false
	for _, k := range constants.StorageKeys {
		if k == cmd.Key {
			known = true
			break
		}
	}
	if !known {
		return errors.Invalidf("unknown storage key %q", cmd.Key)
	}

	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	raw, err := ctx.Store.Get(cmd.Key)
	if errors.Is(err, errors.ErrNotFound) {
		return fmt.Errorf("nothing stored under %q", cmd.Key)
	}
	if err != nil {
		return err
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("stored value is not valid JSON: %w", err)
	}
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}
