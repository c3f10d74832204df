package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zoeyai/zoeymag/internal/logger"
	"github.com/zoeyai/zoeymag/pkg/auto/screen"
	"github.com/zoeyai/zoeymag/pkg/config"
	"github.com/zoeyai/zoeymag/pkg/loop"
	"github.com/zoeyai/zoeymag/pkg/magnifier"
	"github.com/zoeyai/zoeymag/pkg/permissions"
)

// 版本信息 (可通过 ldflags 注入)
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "配置文件路径 (默认 ~/.zoey-magnifier/config.json)")
		fixedZoom   = flag.Bool("fixed", false, "固定 3 倍放大，禁用滚轮调整")
		showVersion = flag.Bool("version", false, "显示版本信息")
		showHelp    = flag.Bool("help", false, "显示帮助信息")
	)
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}
	if *showHelp {
		printHelp()
		return
	}

	os.Exit(run(*configPath, *fixedZoom))
}

func run(configPath string, fixedZoom bool) int {
	log := logger.New()
	defer log.Close()

	manager := config.NewManager()
	if configPath != "" {
		manager = config.NewManagerWithFile(configPath)
	}
	if manager.Exists() {
		log.Info("使用配置文件: %s", manager.GetConfigFile())
	} else {
		log.Info("未找到配置文件 %s，使用默认配置", manager.GetConfigFile())
	}
	cfg, err := manager.Load()
	if err != nil {
		log.Warn("加载配置失败，使用默认配置: %v", err)
	}
	if fixedZoom {
		cfg.FixedZoom = true
	}

	log.SetLevel(logger.ParseLevel(cfg.LogLevel))
	if err := log.SetFile(cfg.LogFile); err != nil {
		log.Warn("%v", err)
	}

	categories := logger.NewRegistry(log)
	applyLogRules(log, categories, cfg.LogRules, "配置文件")
	applyLogRules(log, categories, os.Getenv(config.EnvLogRules), config.EnvLogRules)

	if status := permissions.Check(); !status.ScreenRecording {
		log.Warn("%s", permissions.Instructions(status))
		if !permissions.RequestScreenRecording() {
			if err := permissions.OpenScreenRecordingSettings(); err != nil {
				log.Warn("打开屏幕录制设置失败: %v", err)
			}
		}
	}

	l := loop.New()
	g, err := newGame(l, cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		log.Error("加载字体失败: %v", err)
		return 1
	}

	host := screen.NewHost(displayPixelRatio)

	opts := []magnifier.Option{
		magnifier.WithZoom(cfg.DefaultZoom),
		magnifier.WithIntervals(cfg.ActiveInterval(), cfg.IdleInterval()),
	}
	if cfg.FixedZoom {
		opts = append(opts, magnifier.WithFixedZoom())
	}

	win := magnifier.New(host, g, l, magnifier.Channels{
		General: categories.Category(logger.CategoryMagnifier),
		Timer:   categories.Category(logger.CategoryTimer),
		Wheel:   categories.Category(logger.CategoryWheel),
	}, opts...)
	win.Register(l)

	// 中断信号在下一次 Update 时转为退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		l.Interrupt()
	}()

	ebiten.SetWindowTitle("Zoey Magnifier")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetWindowFloating(true)
	ebiten.SetRunnableOnUnfocused(true)

	log.Info("放大镜已启动: %dx%d, 倍率 %d", cfg.WindowWidth, cfg.WindowHeight, win.Zoom())

	if err := ebiten.RunGame(g); err != nil {
		if errors.Is(err, loop.ErrInterrupted) {
			log.Info("收到中断信号，退出")
			return 1
		}
		log.Error("运行失败: %v", err)
		return 1
	}
	return 0
}

func applyLogRules(log *logger.Logger, reg *logger.Registry, rules, source string) {
	if rules == "" {
		return
	}
	parsed, err := logger.ParseRules(rules)
	if err != nil {
		log.Warn("忽略 %s 中的日志规则: %v", source, err)
		return
	}
	reg.AddRules(parsed)
}

// printVersion 打印版本信息
func printVersion() {
	fmt.Printf("Zoey Magnifier v%s\n", Version)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}

// printHelp 打印帮助信息
func printHelp() {
	fmt.Println("Zoey Magnifier - 屏幕放大镜")
	fmt.Println()
	fmt.Println("用法:")
	fmt.Println("  zoeymag [选项]")
	fmt.Println()
	fmt.Println("选项:")
	fmt.Println("  -config string  配置文件路径")
	fmt.Println("  -fixed          固定 3 倍放大，禁用滚轮调整")
	fmt.Println("  -version        显示版本信息")
	fmt.Println("  -help           显示帮助信息")
	fmt.Println()
	fmt.Println("滚动鼠标滚轮调整放大倍率 (1-20，循环切换)。")
	fmt.Println()
	fmt.Println("调试日志:")
	fmt.Printf("  %s=\"magnifier.debug=true;magnifier.timer.debug=true;magnifier.wheel.debug=true\"\n", config.EnvLogRules)
}
