// Package interactive provides the interactive command-line interface of
// osc-cli.
package interactive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/theta-osc/osc-go/pkg/discovery"
	"github.com/theta-osc/osc-go/pkg/mjpeg"
	"github.com/theta-osc/osc-go/pkg/osc"
	"github.com/theta-osc/osc-go/pkg/theta"
)

// errQuit ends the command loop.
var errQuit = errors.New("quit")

// DiscoverFunc finds cameras for the discover command.
type DiscoverFunc func(ctx context.Context) ([]*discovery.CameraService, error)

// Shell runs commands against one camera.
type Shell struct {
	cam      *theta.Camera
	out      io.Writer
	discover DiscoverFunc
	rl       *readline.Instance

	// WatchInterval separates update checks of the watch command.
	WatchInterval time.Duration
}

// New creates a shell writing to out. discover may be nil.
func New(cam *theta.Camera, out io.Writer, discover DiscoverFunc) *Shell {
	return &Shell{
		cam:           cam,
		out:           out,
		discover:      discover,
		WatchInterval: theta.DefaultWatchInterval,
	}
}

// Attach switches the shell to a readline prompt on the terminal.
func (s *Shell) Attach() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "osc> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	s.rl = rl
	s.out = rl.Stdout()
	return nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(theta.OptionNames()))
	for _, name := range theta.OptionNames() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("info"),
		readline.PcItem("state"),
		readline.PcItem("watch"),
		readline.PcItem("get", items...),
		readline.PcItem("set", items...),
		readline.PcItem("options"),
		readline.PcItem("take"),
		readline.PcItem("list"),
		readline.PcItem("delete"),
		readline.PcItem("preview"),
		readline.PcItem("discover"),
		readline.PcItem("quit"),
	)
}

// Run starts the interactive command loop. Attach must be called first.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if err := s.Exec(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				fmt.Fprintln(s.out, "Exiting...")
				cancel()
				return
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// Exec runs one command line.
func (s *Shell) Exec(ctx context.Context, line string) error {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
		return nil
	case "info":
		return s.cmdInfo(ctx)
	case "state":
		return s.cmdState(ctx)
	case "watch":
		return s.cmdWatch(ctx, args)
	case "get", "g":
		return s.cmdGet(ctx, args)
	case "set", "s":
		return s.cmdSet(ctx, line)
	case "options":
		return s.cmdOptions(args)
	case "take", "t":
		return s.cmdTake(ctx)
	case "list", "ls":
		return s.cmdList(ctx, args)
	case "delete", "rm":
		return s.cmdDelete(ctx, args)
	case "preview":
		return s.cmdPreview(ctx, args)
	case "discover":
		return s.cmdDiscover(ctx)
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
OSC Camera Commands:
  Device:
    info                  - Show device information
    state                 - Show device state
    watch [seconds]       - Print the state whenever it changes

  Options:
    get <option>...       - Read options
    set <option> <json>   - Write one option, e.g. set exposureDelay 3
    options [filter]      - List known option names

  Capture & Files:
    take                  - Take a picture and wait for it
    list [n]              - List the newest n files
    delete <url>...       - Delete files ("all", "image" and "video" work too)
    preview <n> <dir>     - Save n live preview frames as JPEG files

  General:
    discover              - Find cameras on the local network
    help                  - Show this help
    quit                  - Exit`)
}

func (s *Shell) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, string(data))
	return nil
}

func (s *Shell) cmdInfo(ctx context.Context) error {
	info, err := s.cam.Info(ctx)
	if err != nil {
		return err
	}
	return s.printJSON(info)
}

func (s *Shell) cmdState(ctx context.Context) error {
	st, err := s.cam.State(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Fingerprint: %s\n", st.Fingerprint)
	return s.printJSON(st.State)
}

func (s *Shell) cmdWatch(ctx context.Context, args []string) error {
	interval := s.WatchInterval
	if len(args) > 0 {
		secs, err := strconv.ParseFloat(args[0], 64)
		if err != nil || secs <= 0 {
			return fmt.Errorf("invalid interval: %s", args[0])
		}
		interval = time.Duration(secs * float64(time.Second))
	}

	fmt.Fprintln(s.out, "Watching state, press Ctrl+C to stop")
	err := s.cam.WatchState(ctx, interval, func(st osc.State[theta.State]) error {
		fmt.Fprintf(s.out, "[%s] fingerprint=%s battery=%.0f%% capture=%s\n",
			time.Now().Format("15:04:05"), st.Fingerprint, st.State.BatteryLevel*100, st.State.CaptureStatus)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Shell) cmdGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: get <option>...")
	}
	set, err := s.cam.Client().GetOptionsByName(ctx, args...)
	if err != nil {
		return err
	}
	for _, name := range set.Names() {
		raw, _ := set.Raw(name)
		fmt.Fprintf(s.out, "%s = %s\n", name, raw)
	}
	return nil
}

// cmdSet takes the rest of the raw line as JSON so values may contain
// spaces.
func (s *Shell) cmdSet(ctx context.Context, line string) error {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 3)
	if len(fields) < 3 {
		return errors.New("usage: set <option> <json>")
	}
	name, value := fields[1], strings.TrimSpace(fields[2])
	if _, ok := theta.LookupOption(name); !ok {
		fmt.Fprintf(s.out, "Warning: %s is not a known option\n", name)
	}

	b := osc.NewOptionSetBuilder()
	b.PutRaw(name, json.RawMessage(value))
	set, err := b.Build()
	if err != nil {
		return err
	}
	if err := s.cam.SetOptions(ctx, set); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s set\n", name)
	return nil
}

func (s *Shell) cmdOptions(args []string) error {
	for _, name := range theta.OptionNames() {
		if len(args) > 0 && !strings.Contains(strings.ToLower(name), strings.ToLower(args[0])) {
			continue
		}
		fmt.Fprintln(s.out, name)
	}
	return nil
}

func (s *Shell) cmdTake(ctx context.Context) error {
	resp, err := s.cam.TakePicture(ctx)
	if err != nil {
		return err
	}
	resp, err = theta.Await(ctx, s.cam, resp)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Captured: %s\n", resp.Value().FileURL)
	return nil
}

func (s *Shell) cmdList(ctx context.Context, args []string) error {
	params := theta.DefaultListFilesParams()
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid count: %s", args[0])
		}
		params.EntryCount = n
	}

	resp, err := s.cam.ListFiles(ctx, params)
	if err != nil {
		return err
	}
	result := resp.Value()
	fmt.Fprintf(s.out, "%d of %d files:\n", len(result.Entries), result.TotalEntries)
	for _, f := range result.Entries {
		fmt.Fprintf(s.out, "  %-24s %10d  %s\n", f.Name, f.Size, f.FileURL)
	}
	return nil
}

func (s *Shell) cmdDelete(ctx context.Context, args []string) error {
	resp, err := s.cam.Delete(ctx, args...)
	if err != nil {
		return err
	}
	if resp.InProgress() {
		if _, err := theta.Await(ctx, s.cam, resp); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.out, "Deleted %d entries\n", len(args))
	return nil
}

func (s *Shell) cmdPreview(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: preview <n> <dir>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid frame count: %s", args[0])
	}
	dir := args[1]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	d, err := s.cam.LivePreview(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	for i := 0; i < n; i++ {
		frame, err := d.NextFrame()
		if err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.jpg", i))
		if err := saveFrame(frame, path); err != nil {
			return err
		}
	}
	fmt.Fprintf(s.out, "Saved %d frames to %s\n", n, dir)
	return nil
}

func saveFrame(frame *mjpeg.Frame, path string) error {
	defer frame.Close()
	data, err := frame.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Shell) cmdDiscover(ctx context.Context) error {
	if s.discover == nil {
		return errors.New("discovery is not available")
	}
	services, err := s.discover(ctx)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		fmt.Fprintln(s.out, "No cameras found")
		return nil
	}
	for _, svc := range services {
		fmt.Fprintf(s.out, "  %-24s %s\n", svc.InstanceName, svc.Endpoint())
	}
	return nil
}
