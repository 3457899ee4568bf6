package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/construct/config"
	"github.com/automoto/construct/fonts"
	"github.com/automoto/construct/scenes"
	"github.com/automoto/construct/shared/leveldata"
	"github.com/automoto/construct/shared/physics"
	"github.com/automoto/construct/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(level *leveldata.Level, mode physics.Mode, logger *zap.Logger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlaytestScene(g, level, mode).WithLogger(logger)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(config.Input.Quit) {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

type options struct {
	mode      string
	levelPath string
	levelsDir string
	saved     string
	saveAs    string
	list      bool
	configYML string
	fontPath  string
}

func main() {
	var opts options
	flag.StringVar(&opts.mode, "mode", "side", "physics mode: side or top")
	flag.StringVar(&opts.levelPath, "level", "", "level file to play (.json or .tmx), or a level name with -levels")
	flag.StringVar(&opts.levelsDir, "levels", "", "directory of .json and .tmx levels")
	flag.StringVar(&opts.saved, "saved", "", "play a level from the save store")
	flag.StringVar(&opts.saveAs, "save", "", "store the level being played under this name")
	flag.BoolVar(&opts.list, "list", false, "list saved levels (or the -levels directory) and exit")
	flag.StringVar(&opts.configYML, "config", "", "YAML physics overrides")
	flag.StringVar(&opts.fontPath, "font", "", "TTF font for the HUD")
	flag.BoolVar(&config.Debug.Hitboxes, "debug", false, "outline hitboxes and log verbosely")
	flag.Parse()
	config.Debug.Verbose = config.Debug.Hitboxes

	logger, err := newLogger(config.Debug.Verbose)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger)

	if err := run(opts, logger); err != nil {
		logger.Fatal("construct", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(opts options, logger *zap.Logger) error {
	if opts.configYML != "" {
		if err := config.LoadPhysicsFile(opts.configYML); err != nil {
			return err
		}
	}
	if opts.fontPath != "" {
		if err := fonts.LoadFontFile(fonts.HUD, opts.fontPath, 12); err != nil {
			logger.Warn("using built-in HUD font", zap.Error(err))
		}
	}

	mode, err := physics.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	// Playing without a save store still works; only -saved, -save and
	// -list need it.
	if err := systems.InitPersistence(config.Level.SaveAppName); err != nil {
		logger.Warn("level store unavailable", zap.Error(err))
	}

	if opts.list {
		names, err := listLevels(opts)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	}

	level, err := pickLevel(opts)
	if err != nil {
		return err
	}
	if opts.saveAs != "" {
		if err := systems.SaveLevel(opts.saveAs, leveldata.OrFallback(level).Entities); err != nil {
			return err
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(level, mode, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// pickLevel resolves the level flags. No flag means the fallback level,
// which the scene picks when handed nil.
func pickLevel(opts options) (*leveldata.Level, error) {
	switch {
	case opts.saved != "" && (opts.levelPath != "" || opts.levelsDir != ""):
		return nil, errors.New("-saved cannot be combined with -level or -levels")
	case opts.saved != "":
		return systems.LoadLevel(opts.saved)
	case opts.levelsDir != "":
		return leveldata.Pick(os.DirFS(opts.levelsDir), ".", opts.levelPath)
	case opts.levelPath != "":
		dir, file := filepath.Split(opts.levelPath)
		if dir == "" {
			dir = "."
		}
		return leveldata.Load(os.DirFS(dir), file)
	}
	return nil, nil
}

func listLevels(opts options) ([]string, error) {
	if opts.levelsDir == "" {
		return systems.SavedLevels()
	}
	_, names, err := leveldata.LoadAll(os.DirFS(opts.levelsDir), ".")
	return names, err
}
