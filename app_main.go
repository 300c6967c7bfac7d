package logo

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	SCREEN_WIDTH  = 1280
	SCREEN_HEIGHT = 720
)

var (
	TheDesignerScreen *DesignerScreen
	TheOptionsScreen  *OptionsScreen

	NextScreen Screen
)

func SetNextScreen(screen Screen) {
	NextScreen = screen
}

var ErrorLogger *log.Logger = log.New(os.Stderr, "LOGO__ERROR : ", log.Lshortfile)
var AppLogger *log.Logger = log.New(os.Stdout, "LOGO__LOG : ", log.Lshortfile)

var TheRenderTexture rl.RenderTexture2D

var appShouldQuit bool

func RequestQuit() {
	appShouldQuit = true
}

func GetRenderedScreenRect() rl.Rectangle {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	scale := min(screenW/SCREEN_WIDTH, screenH/SCREEN_HEIGHT)

	return rl.Rectangle{
		X:     (screenW - (SCREEN_WIDTH * scale)) * 0.5,
		Y:     (screenH - (SCREEN_HEIGHT * scale)) * 0.5,
		Width: SCREEN_WIDTH * scale, Height: SCREEN_HEIGHT * scale,
	}
}

var FlagPProf = flag.Bool("pprof", false, "run with pprof server")

func RunApplication() {
	flag.Parse()

	if *FlagPProf {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)

	defer println("program closed successfully!")

	rl.InitWindow(SCREEN_WIDTH, SCREEN_HEIGHT, "logo-studio")
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)

	TheRenderTexture = rl.LoadRenderTexture(SCREEN_WIDTH, SCREEN_HEIGHT)
	defer rl.UnloadRenderTexture(TheRenderTexture)

	if !rl.IsRenderTextureReady(TheRenderTexture) {
		ErrorLogger.Fatal("failed to load the render texture")
	}

	rl.SetTextureFilter(TheRenderTexture.Texture, rl.FilterBilinear)

	// init stuffs
	InitAlert()
	InitTransition()
	InitPopupDialog()
	InitColorPicker()
	InitWindowCapture()
	InitPreview()
	defer FreePreview()

	if err := InitFontCatalog(AppLogger); err != nil {
		ErrorLogger.Println(err)
		DisplayAlert("no fonts found, logo text will not render")
	}

	// load the previous session
	if err := LoadSession(); err != nil {
		ErrorLogger.Println(err)
		DisplayAlert("failed to load previous session")
	}

	// create screens
	TheDesignerScreen = NewDesignerScreen()
	TheOptionsScreen = NewOptionsScreen()

	screensToFree := []Screen{
		TheDesignerScreen,
		TheOptionsScreen,
	}

	defer func() {
		for _, screen := range screensToFree {
			screen.Free()
		}
	}()

	var screen Screen = TheDesignerScreen
	screen.BeforeScreenTransition()

	GlobalTimerStart()

	appliedFPS := TheOptions.TargetFPS
	rl.SetTargetFPS(appliedFPS)

	previousTime := time.Now()

	// variables for estimating fps
	estimateTimer := time.Now()
	fpsEstimateCounter := 0
	fpsEstimateValueStr := "?"

	for !rl.WindowShouldClose() && !appShouldQuit {
		currentTime := time.Now()
		deltaTime := currentTime.Sub(previousTime)
		previousTime = currentTime

		if deltaTime < 0 {
			deltaTime = 0
		}

		if TheOptions.TargetFPS != appliedFPS {
			appliedFPS = TheOptions.TargetFPS
			rl.SetTargetFPS(appliedFPS)
		}

		// ========================
		// update routine
		// ========================

		if rl.IsKeyPressed(ToggleDebugMsgKey) {
			SetDrawDebugMsg(!DrawDebugMsg())
		}

		UpdateWindowCapture()
		UpdatePopup()
		UpdateColorPicker()
		UpdateTransitionTexture(deltaTime)
		UpdateAlert(deltaTime)

		// Swap screens the moment the transition callback asks for it,
		// while the fade still covers the whole window. Waiting for the
		// transition to finish would draw the old screen during fade-in.
		if NextScreen != nil {
			screen = NextScreen
			screen.BeforeScreenTransition()
			NextScreen = nil
		}

		// update screen
		if !IsTransitionOn() {
			screen.Update(deltaTime)
		}

		// ========================
		// draw routine
		// ========================

		rl.BeginTextureMode(TheRenderTexture)
		{
			screen.Draw()
			DrawColorPicker()
			DrawPopup()
			DrawAlert()
			DrawTransition()
		}
		rl.EndTextureMode()

		rl.BeginDrawing()
		{
			rl.ClearBackground(rl.Color{R: 0, G: 0, B: 0, A: 255})

			rl.DrawTexturePro(
				TheRenderTexture.Texture,
				rl.Rectangle{Width: SCREEN_WIDTH, Height: -SCREEN_HEIGHT},
				GetRenderedScreenRect(),
				rl.Vector2{},
				0,
				rl.Color{R: 255, G: 255, B: 255, A: 255},
			)

			DrawDebugMsgs()

			fpsEstimateCounter += 1
		}
		rl.EndDrawing()

		ClearDebugMsgs()

		// update fps estimate
		{
			now := time.Now()
			delta := now.Sub(estimateTimer)
			if delta > time.Second {
				fpsEstimate := float64(fpsEstimateCounter) / delta.Seconds()
				fpsEstimateCounter = 0
				estimateTimer = now
				fpsEstimateValueStr = fmt.Sprintf("%.3f", fpsEstimate)
			}

			DebugPrint("estimate fps", fpsEstimateValueStr)
		}
	}

	if TheOptions.AutoSaveSession {
		if err := SaveSession(); err != nil {
			ErrorLogger.Printf("failed to save session: %v", err)
		}
	}
}
