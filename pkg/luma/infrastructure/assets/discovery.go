// Package assets discovers model files installed on the local machine.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lumachat.dev/luma/pkg/common"
)

const (
	// ConfigKeyModelsDirectory where model files are expected to live
	ConfigKeyModelsDirectory = "modelsDirectory"
)

// Model file formats we know how to report. Weights come in many formats but these are the
// ones the backends actually load.
var bundleExtensions = []string{".gguf", ".onnx", ".bin"}

// Bundle one discovered model file.
type Bundle struct {
	Name string
	Path string
}

type Discovery struct {
	modelsDirectory string
	logger          common.Logger
}

func NewDiscovery(config *common.Config, logger common.Logger) *Discovery {
	return &Discovery{
		modelsDirectory: config.GetStringOrDefault(ConfigKeyModelsDirectory, "models"),
		logger:          logger,
	}
}

// ListBundles walks the models directory and returns every model file found, sorted by name.
// A missing directory is not an error: it simply means no models are installed yet.
func (d *Discovery) ListBundles() ([]Bundle, error) {
	var bundles []Bundle
	err := filepath.WalkDir(d.modelsDirectory, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !isBundlePath(path) {
			return nil
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		bundles = append(bundles, Bundle{Name: name, Path: path})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	sort.Slice(bundles, func(i, j int) bool { return bundles[i].Name < bundles[j].Name })
	d.logger.Log(fmt.Sprintf("discovered %d model bundle(s) in \"%s\"", len(bundles), d.modelsDirectory))
	return bundles, nil
}

func isBundlePath(path string) bool {
	extension := strings.ToLower(filepath.Ext(path))
	for _, bundleExtension := range bundleExtensions {
		if extension == bundleExtension {
			return true
		}
	}
	return false
}
