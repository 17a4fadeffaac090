package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/slm"
	"github.com/BeatGlow/slm/draw"
	"github.com/BeatGlow/slm/internal/config"
	"github.com/BeatGlow/slm/pattern"
	"github.com/BeatGlow/slm/phase"
)

func main() {
	configFlag := flag.String("config", "", "Configuration file (default: ~/.config/slm/config.yaml)")
	libFlag := flag.String("lib", "", "Display library path")
	screenFlag := flag.Uint("screen", 0, "Screen number")
	bitsFlag := flag.Int("bits", 0, "Level depth (8 or 10)")
	encodingFlag := flag.String("encoding", "", "Encoding of byte string paths (IANA name)")
	triggerFlag := flag.String("trigger", "", "Trigger GPIO pin")
	rotateFlag := flag.String("rotate", "", "Pattern rotation")
	labelFlag := flag.String("label", "", "Label drawn on patterns")
	localFlag := flag.Bool("local", false, "Decode image and CSV files locally")
	narrowFlag := flag.Bool("narrow", false, "Pass file paths as byte strings")
	holdFlag := flag.Duration("hold", 0, "How long to keep the window open (default: until interrupted)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <info|gray|pattern|image|csv|offset> [args]\n", os.Args[0])
		os.Exit(1)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal(err)
	}
	if *libFlag != "" {
		cfg.Library = *libFlag
	}
	if *screenFlag != 0 {
		cfg.Screen = uint32(*screenFlag)
	}
	if *bitsFlag != 0 {
		cfg.Bits = *bitsFlag
	}
	if *encodingFlag != "" {
		cfg.NarrowEncoding = *encodingFlag
	}
	if *triggerFlag != "" {
		cfg.Trigger.Pin = *triggerFlag
	}
	if err = cfg.Validate(); err != nil {
		fatal(err)
	}

	var rotation slm.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = slm.NoRotation
	case "90", "right", "cw":
		rotation = slm.Rotate90
	case "180", "flip":
		rotation = slm.Rotate180
	case "270", "left", "ccw":
		rotation = slm.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}

	devConfig := slm.DefaultConfig
	devConfig.Library = cfg.Library
	devConfig.Screen = slm.ScreenIndex(cfg.Screen)
	if devConfig.NarrowEncoding, err = cfg.Encoding(); err != nil {
		fatal(err)
	}
	if cfg.Trigger.Pin != "" {
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		if devConfig.Trigger = gpioreg.ByName(cfg.Trigger.Pin); devConfig.Trigger == nil {
			fatal(fmt.Errorf("unknown trigger pin %q", cfg.Trigger.Pin))
		}
		devConfig.TriggerWidth = cfg.Trigger.Width
		fmt.Printf("using trigger: %s\n", devConfig.Trigger)
	}

	dev, err := slm.Open(&devConfig)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using device: %s\n", dev)

	var (
		screen = slm.ScreenIndex(cfg.Screen)
		depth  = slm.Depth(cfg.Bits)
	)
	if err = dev.OpenWindow(screen); err != nil {
		fatal(err)
	}
	defer dev.Close()

	if cfg.Offset != nil {
		if err = dev.SetOffset(screen, cfg.Offset.X, cfg.Offset.Y); err != nil {
			fatal(err)
		}
	}

	args := flag.Args()[1:]
	switch command := strings.ToLower(flag.Arg(0)); command {
	case "info":
		err = info(dev, screen)
	case "gray", "grey":
		var level uint64
		if level, err = strconv.ParseUint(arg(args, 0, "512"), 10, 16); err == nil {
			err = dev.DisplayGrayscale(screen, uint16(level), depth)
		}
	case "pattern":
		err = showPattern(dev, screen, depth, rotation, *labelFlag, args)
	case "image":
		err = showImage(dev, screen, depth, arg(args, 0, ""), *localFlag, *narrowFlag)
	case "csv":
		err = showCSV(dev, screen, depth, arg(args, 0, ""), *localFlag, *narrowFlag)
	case "offset":
		err = offset(dev, screen, args)
	default:
		err = fmt.Errorf("unsupported command %q", command)
	}
	if err != nil {
		_ = dev.Close()
		fatal(err)
	}

	hold(*holdFlag)
}

func info(dev *slm.Device, screen slm.ScreenIndex) error {
	w, h, err := dev.Size(screen)
	if err != nil {
		return err
	}
	x, y, err := dev.Offset(screen)
	if err != nil {
		return err
	}
	fmt.Printf("screen %d: %dx%d, offset (%d,%d)\n", screen, w, h, x, y)
	return nil
}

func showPattern(dev *slm.Device, screen slm.ScreenIndex, depth slm.Depth, rotation slm.Rotation, label string, args []string) error {
	output, err := dev.Screen(screen, depth)
	if err != nil {
		return err
	}
	if err = output.SetRotation(rotation); err != nil {
		return err
	}
	fmt.Printf("using screen: %s, rotation %s\n", output, rotation)

	name := arg(args, 0, "crosshair")
	param, err := strconv.ParseFloat(arg(args, 1, "0"), 64)
	if err != nil {
		return fmt.Errorf("invalid %s parameter: %w", name, err)
	}

	switch name {
	case "constant":
		pattern.Constant(output.Image, uint16(param))
	case "grating":
		if param == 0 {
			param = 16
		}
		var angle float64
		if angle, err = strconv.ParseFloat(arg(args, 2, "0"), 64); err != nil {
			return fmt.Errorf("invalid grating angle: %w", err)
		}
		pattern.Grating(output.Image, param, angle)
	case "checker":
		if param == 0 {
			param = 32
		}
		pattern.Checker(output.Image, int(param))
	case "vortex":
		if param == 0 {
			param = 1
		}
		pattern.Vortex(output.Image, int(param))
	case "lens":
		if param == 0 {
			param = 100
		}
		pattern.Lens(output.Image, param)
	case "crosshair":
		pattern.Crosshair(output.Image, color.White)
	default:
		return fmt.Errorf("unsupported pattern %q", name)
	}

	if label != "" {
		size := float64(output.Bounds().Dy()) / 20
		if _, err = draw.Text(output, image.Pt(int(size), int(size*2)), nil, size, label, color.White); err != nil {
			return err
		}
	}

	return output.Refresh()
}

func showImage(dev *slm.Device, screen slm.ScreenIndex, depth slm.Depth, path string, local, narrow bool) error {
	switch {
	case local:
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		src, err := phase.Decode(f, int(depth))
		if err != nil {
			return err
		}
		output, err := dev.Screen(screen, depth)
		if err != nil {
			return err
		}
		// Center the image on the screen.
		r := src.Bounds().Add(output.Bounds().Size().Sub(src.Bounds().Size()).Div(2))
		return output.Draw(r, src, image.Point{})
	case narrow:
		return dev.DisplayImageFileA(screen, path, depth)
	default:
		return dev.DisplayImageFile(screen, path, depth)
	}
}

func showCSV(dev *slm.Device, screen slm.ScreenIndex, depth slm.Depth, path string, local, narrow bool) error {
	switch {
	case local:
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		g, err := phase.ReadCSV(f)
		if err != nil {
			return err
		}
		fmt.Printf("read %dx%d levels from %s\n", g.Width, g.Height, path)
		return dev.DisplayData(screen, g, depth)
	case narrow:
		return dev.DisplayCSVFileA(screen, path, depth)
	default:
		return dev.DisplayCSVFile(screen, path, depth)
	}
}

func offset(dev *slm.Device, screen slm.ScreenIndex, args []string) error {
	if len(args) >= 2 {
		x, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid x offset: %w", err)
		}
		y, err := strconv.ParseUint(args[1], 10, 16)
		if err != nil {
			return fmt.Errorf("invalid y offset: %w", err)
		}
		if err = dev.SetOffset(screen, uint16(x), uint16(y)); err != nil {
			return err
		}
	}
	x, y, err := dev.Offset(screen)
	if err != nil {
		return err
	}
	fmt.Printf("screen %d offset: (%d,%d)\n", screen, x, y)
	return nil
}

func arg(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

func hold(d time.Duration) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	if d > 0 {
		select {
		case <-interrupt:
		case <-time.After(d):
		}
		return
	}
	fmt.Println("hit control-c to stop...")
	<-interrupt
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
