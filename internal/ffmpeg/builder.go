package ffmpeg

import "github.com/backmassage/thumbsheet/internal/planner"

// Binary is the encoder executable looked up on PATH.
const Binary = "ffmpeg"

// Build constructs the complete ffmpeg argument slice for one contact sheet.
// args[0] is the binary name.
//
//	ffmpeg -hide_banner -nostdin -n -loglevel <lvl> -i IN -vf GRAPH -frames:v 1 -update 1 OUT
//
// -update 1 makes the image2 muxer write OUT literally instead of treating a
// %d in the file name as a sequence pattern. -n makes ffmpeg refuse to overwrite, so a sheet that appears between the
// existence check and the run is never clobbered. -nostdin keeps ffmpeg from
// reading the terminal.
func Build(plan *planner.MontagePlan, verbose bool) []string {
	args := make([]string, 0, 16)

	// --- Preamble ---
	args = append(args, Binary, "-hide_banner", "-nostdin", "-n")

	// Loglevel: info when verbose, otherwise error.
	if verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Input ---
	args = append(args, "-i", plan.InputPath)

	// --- Filter chain: select -> scale -> tile ---
	args = append(args, "-vf", plan.FilterGraph())

	// --- Single output image ---
	args = append(args, "-frames:v", "1", "-update", "1", plan.OutputPath)

	return args
}
