package media

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/chime/internal/osutil"
)

// FilePlaceholder is replaced by the output path in the recording command.
const FilePlaceholder = "{file}"

// stopTimeout is how long an interrupted recorder gets to finish writing.
const stopTimeout = 5 * time.Second

// Recording is an in-progress capture.
type Recording struct {
	StartTime time.Time
	cmd       *exec.Cmd
	done      chan error
	Path      string
}

// Recorder captures audio clips for custom alarms.
type Recorder interface {
	StartRecording(ctx context.Context) (*Recording, error)
	StopRecording(r *Recording) (string, error)
}

// CommandRecorder records by running an external program such as arecord or
// sox. The program is expected to write to the path substituted for
// FilePlaceholder and to finish the file when it receives an interrupt.
type CommandRecorder struct {
	// Cmd is the command line, e.g. "arecord -q -f cd {file}".
	Cmd string
	// Dir is where recordings are stored.
	Dir string
}

// NewCommandRecorder returns a recorder that runs cmd and writes clips to dir.
func NewCommandRecorder(cmd, dir string) *CommandRecorder {
	return &CommandRecorder{
		Cmd: cmd,
		Dir: dir,
	}
}

// buildArgs splits the command line and substitutes the output path. When the
// placeholder is absent the path is appended as the last argument.
func buildArgs(cmdLine, path string) ([]string, error) {
	args, err := shellquote.Split(cmdLine)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, errEmptyRecordCmd
	}

	var substituted bool

	for i := range args {
		if strings.Contains(args[i], FilePlaceholder) {
			args[i] = strings.ReplaceAll(args[i], FilePlaceholder, path)
			substituted = true
		}
	}

	if !substituted {
		args = append(args, path)
	}

	return args, nil
}

// StartRecording launches the recording command in the background.
func (c *CommandRecorder) StartRecording(
	ctx context.Context,
) (*Recording, error) {
	err := os.MkdirAll(c.Dir, osutil.DirPermission)
	if err != nil {
		return nil, ErrMediaUnavailable.Wrap(err)
	}

	path := filepath.Join(c.Dir, "recording-"+uuid.NewString()+".wav")

	args, err := buildArgs(c.Cmd, path)
	if err != nil {
		return nil, ErrMediaUnavailable.Wrap(err)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	err = cmd.Start()
	if err != nil {
		return nil, ErrMediaUnavailable.Wrap(err)
	}

	r := &Recording{
		Path:      path,
		StartTime: time.Now(),
		cmd:       cmd,
		done:      make(chan error, 1),
	}

	go func() {
		r.done <- cmd.Wait()
	}()

	return r, nil
}

// StopRecording interrupts the recording command if it is still running and
// returns the path of the finished clip.
func (c *CommandRecorder) StopRecording(r *Recording) (string, error) {
	var err error

	select {
	case err = <-r.done:
	default:
		if sigErr := r.cmd.Process.Signal(os.Interrupt); sigErr != nil {
			_ = r.cmd.Process.Kill()
		}

		select {
		case <-r.done:
			// the exit status of an interrupted recorder is meaningless
		case <-time.After(stopTimeout):
			_ = r.cmd.Process.Kill()
			<-r.done

			err = errRecorderHung
		}
	}

	if err != nil {
		_ = os.Remove(r.Path)
		return "", ErrMediaUnavailable.Wrap(err)
	}

	fi, err := os.Stat(r.Path)
	if err != nil {
		return "", ErrMediaUnavailable.Wrap(err)
	}

	if fi.Size() == 0 {
		_ = os.Remove(r.Path)
		return "", ErrMediaUnavailable.Wrap(errEmptyRecording.Fmt(r.Path))
	}

	return r.Path, nil
}
