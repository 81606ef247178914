package actions

import (
	"metro.dev/metro/internal/engine"
	"metro.dev/metro/internal/runtime"
	"metro.dev/metro/internal/tui"
)

// StatusAction prints the current branch, merge state and pending changes
func StatusAction(ctx *runtime.Context) error {
	st, err := ctx.Engine.Status(ctx.Context)
	if err != nil {
		return err
	}
	splog := ctx.Splog

	if st.Detached {
		splog.Info("HEAD detached at %s", tui.ColorDim(ShortID(st.Head.ID)))
	} else {
		splog.Info("On branch %s", tui.ColorBranchName(st.Branch.Name))
	}
	if st.Head != nil {
		splog.Info("Last commit %s %s", tui.ColorDim(ShortID(st.Head.ID)), Subject(st.Head.Message))
	}
	if st.HasWip {
		splog.Info("Work in progress saved on %s", tui.ColorWip(st.Branch.WipBranch()))
	}

	switch st.MergeStatus() {
	case engine.MergeStatusConflicted:
		splog.Newline()
		splog.Info("%s", tui.ColorRed("Merging "+ShortID(st.Merge.Head)+" with conflicts"))
		PrintConflictStatus(ctx.Context, st.Conflicts, splog)
	case engine.MergeStatusMerging:
		splog.Newline()
		splog.Info("%s", tui.ColorYellow("Merging "+ShortID(st.Merge.Head)))
		splog.Tip("Run %s to commit the merge.", tui.ColorCyan("metro resolve"))
	}

	if len(st.Changes) == 0 {
		if st.MergeStatus() == engine.MergeStatusClean {
			splog.Info("Nothing to commit, working tree clean")
		}
		return nil
	}
	splog.Newline()
	splog.Info("%s", tui.ColorYellow("Changes:"))
	for _, line := range st.Changes {
		splog.Info("  %s", line)
	}
	return nil
}
