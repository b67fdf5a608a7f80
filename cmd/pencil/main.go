package main

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/ofagbemi/pencil"
	"github.com/sirupsen/logrus"
)

type options struct {
	Engine    string `short:"e" long:"engine"      default:"sdl" choice:"sdl" choice:"kmsdrm" choice:"headless" description:"The paint engine"`
	Width     int    `short:"W" long:"width"       default:"640" description:"Surface width (sdl, headless)"`
	Height    int    `short:"H" long:"height"      default:"480" description:"Surface height (sdl, headless)"`
	Card      int    `long:"card"                  default:"0"   description:"DRM card number (kmsdrm)"`
	RGB16     bool   `long:"rgb16"                 description:"Use 16-bit pixels (kmsdrm, headless)"`
	CellSize  int    `short:"s" long:"cell-size"   default:"10"  description:"Cell size in surface pixels"`
	Color     string `short:"c" long:"color"       default:"#000000" description:"Drawing color, a CSS name or a hex triplet"`
	Load      string `short:"l" long:"load"        description:"Snapshot to load on start"`
	Save      string `short:"o" long:"save"        description:"Snapshot to write on exit"`
	Script    string `long:"script"                description:"Event script to replay"`
	ExportPNG string `long:"export-png"            description:"PNG file to write on exit (headless)"`
	Scale     int    `long:"export-scale"          default:"1"   description:"Integer upscale of the exported PNG"`
	Verbose   []bool `short:"v" long:"verbose"     description:"Verbose logging, repeat for trace"`
}

func init() {
	// SDL wants every call on the thread that initialized it.
	runtime.LockOSThread()
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	return opts
}

func setupLogger(opts *options) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	switch len(opts.Verbose) {
	case 0:
		log.SetLevel(logrus.InfoLevel)
	case 1:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.TraceLevel)
	}
	pencil.SetLogger(log)
	return log
}

func main() {
	opts := parseCmd()
	log := setupLogger(&opts)

	if err := run(&opts, log); err != nil {
		log.WithError(err).Error("pencil failed")
		os.Exit(1)
	}
}

func run(opts *options, log *logrus.Logger) error {
	pixFormat := pencil.RGB32
	if opts.RGB16 {
		pixFormat = pencil.RGB16
	}

	var pixmap *pencil.Pixmap
	var paintEngine pencil.PaintEngine
	var err error
	switch opts.Engine {
	case "sdl":
		paintEngine, err = pencil.NewSDLPaintEngine("pencil", opts.Width, opts.Height)
	case "kmsdrm":
		paintEngine, err = pencil.NewKMSDRMPaintEngine(opts.Card, pixFormat)
	default:
		pixmap = pencil.NewPixmap(opts.Width, opts.Height, pixFormat)
		paintEngine = pencil.NewPixmapPaintEngine(pixmap)
	}
	if err != nil {
		return fmt.Errorf("create %s paint engine: %w", opts.Engine, err)
	}
	if closer, ok := paintEngine.(io.Closer); ok {
		defer closer.Close()
	}
	log.WithFields(logrus.Fields{
		"engine": opts.Engine,
		"width":  paintEngine.GetWidth(),
		"height": paintEngine.GetHeight(),
	}).Info("Paint engine ready")

	engine, err := pencil.NewRasterEngine(paintEngine, pencil.Config{
		CellSize:     opts.CellSize,
		DefaultColor: pencil.Color(opts.Color),
	})
	if err != nil {
		return err
	}

	if opts.Load != "" {
		if err := loadSnapshot(engine, opts.Load); err != nil {
			return err
		}
		log.WithField("file", opts.Load).Info("Snapshot loaded")
	} else if err := engine.Redraw(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.Script != "" {
		if err := replayScript(ctx, engine, opts.Script); err != nil {
			return err
		}
	}

	if opts.Engine == "sdl" {
		if err := runSDL(ctx, engine); err != nil {
			return err
		}
	}

	if opts.Save != "" {
		if err := saveSnapshot(engine, opts.Save); err != nil {
			return err
		}
		log.WithField("file", opts.Save).Info("Snapshot saved")
	}

	if opts.ExportPNG != "" {
		if pixmap == nil {
			log.WithField("engine", opts.Engine).Warn("PNG export is only available with the headless engine")
			return nil
		}
		if err := exportPNG(pixmap, opts.ExportPNG, opts.Scale); err != nil {
			return err
		}
		log.WithField("file", opts.ExportPNG).Info("PNG exported")
	}
	return nil
}

// runSDL pumps window events on the main thread until the window closes.
func runSDL(ctx context.Context, engine *pencil.RasterEngine) error {
	src := pencil.NewSDLInputSource()
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		running := src.Pump()
		if err := engine.Drain(src); err != nil {
			return err
		}
		if !running {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func replayScript(ctx context.Context, engine *pencil.RasterEngine, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	events, err := pencil.LoadEventScript(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return engine.Run(ctx, pencil.NewScriptSource(events))
}

func loadSnapshot(engine *pencil.RasterEngine, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	snapshot, err := pencil.LoadSnapshot(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if snapshot.CellSize > 0 && snapshot.CellSize != engine.CellSize() {
		if err := engine.SetCellSize(snapshot.CellSize); err != nil {
			return err
		}
	}
	return engine.LoadPixels(snapshot.Pixels)
}

func saveSnapshot(engine *pencil.RasterEngine, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	err = pencil.SaveSnapshot(file, pencil.Snapshot{
		CellSize: engine.CellSize(),
		Pixels:   engine.Pixels(),
	})
	if err != nil {
		return err
	}
	return file.Sync()
}

func exportPNG(pixmap *pencil.Pixmap, path string, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, pencil.ScaleImage(pixmap.Image(), scale)); err != nil {
		return err
	}
	return file.Sync()
}
