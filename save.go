package logo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"logo-studio/render"
)

const SaveFileName = "logo-studio-save.json"

var SaveDataMajorVersion = 1
var SaveDataMinorVersion = 0

type SaveData struct {
	MajorVersion int
	MinorVersion int

	Options Options

	Design render.Design
}

func createSaveData() SaveData {
	return SaveData{
		MajorVersion: SaveDataMajorVersion,
		MinorVersion: SaveDataMinorVersion,

		Options: TheOptions,

		Design: TheSession.Design,
	}
}

// TheSession is the design being edited, shared between the editor
// screen and persistence.
var TheSession struct {
	Design render.Design
}

func init() {
	TheSession.Design = render.DefaultDesign()
}

func SaveSession() error {
	path, err := RelativePath(SaveFileName)
	if err != nil {
		return err
	}

	data, err := EncodeSaveData(createSaveData())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0664)
}

func LoadSession() error {
	path, err := RelativePath(SaveFileName)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)

	if errors.Is(err, os.ErrNotExist) {
		// nothing saved yet
		return nil
	} else if err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("save file is not regular")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	saveData, err := DecodeSaveData(content)
	if err != nil {
		return err
	}

	TheOptions = saveData.Options
	TheSession.Design = saveData.Design

	return nil
}

func EncodeSaveData(sv SaveData) ([]byte, error) {
	var buffer bytes.Buffer

	encoder := json.NewEncoder(&buffer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(sv); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func DecodeSaveData(data []byte) (SaveData, error) {
	var sv SaveData

	if err := json.Unmarshal(data, &sv); err != nil {
		return SaveData{}, err
	}

	if sv.MajorVersion > SaveDataMajorVersion {
		return SaveData{}, fmt.Errorf(
			"save file version %d.%d is newer than this app understands",
			sv.MajorVersion, sv.MinorVersion)
	}

	// a saved design may predate stricter validation
	if err := sv.Design.Validate(); err != nil {
		return SaveData{}, fmt.Errorf("saved design is invalid: %w", err)
	}

	// hand-edited or stale save files may carry out-of-range options
	sv.Options.TargetFPS = Clamp(sv.Options.TargetFPS, MinTargetFPS, MaxTargetFPS)

	return sv, nil
}
