package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/spdemo/internal/demo"
	"github.com/katalvlaran/spdemo/walker"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "spdemo"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	dotEnvFileName   = ".env"

	envPrefix = "SPDEMO"

	gridRowsKey       = "grid.rows"
	gridColsKey       = "grid.cols"
	algorithmKey      = "algorithm"
	diagonalsKey      = "diagonals"
	brushKey          = "brush"
	weightBaselineKey = "weight.baseline"
	weightBrushesKey  = "weight.brushes"
	fpsKey            = "fps"

	algorithmFlagName = "algorithm"
	diagonalsFlagName = "diagonals"
	brushFlagName     = "brush"
	fpsFlagName       = "fps"
	seedFlagName      = "seed"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"

	defaultRows      = 20
	defaultCols      = 40
	defaultAlgorithm = walker.AStar
	defaultDiagonals = true
	defaultBrush     = demo.WallBrush
	defaultBaseline  = 1.0
	defaultFPS       = 30

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".spdemo.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultBrushWeights = []float64{2, 3, 5}

func init() {
	// Values from .env become ordinary environment variables and reach
	// viper through AutomaticEnv. A missing file is not an error.
	_ = godotenv.Load(dotEnvFileName)

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		slog.Warn("Ignoring unreadable config file", "file", viper.ConfigFileUsed(), "error", err)
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(gridRowsKey, defaultRows)
	viper.SetDefault(gridColsKey, defaultCols)
	viper.SetDefault(algorithmKey, defaultAlgorithm)
	viper.SetDefault(diagonalsKey, defaultDiagonals)
	viper.SetDefault(brushKey, defaultBrush)
	viper.SetDefault(weightBaselineKey, defaultBaseline)
	viper.SetDefault(weightBrushesKey, defaultBrushWeights)
	viper.SetDefault(fpsKey, defaultFPS)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// sessionConfig assembles a session description from the merged
// flag, environment, config file and default values.
func sessionConfig(rows, cols int) demo.Config {
	return demo.Config{
		Rows:         rows,
		Cols:         cols,
		Algorithm:    viper.GetString(algorithmKey),
		Diagonals:    viper.GetBool(diagonalsKey),
		Brush:        viper.GetString(brushKey),
		Baseline:     viper.GetFloat64(weightBaselineKey),
		BrushWeights: brushWeights(),
	}
}

// brushWeights reads weight.brushes, which arrives as a list from the
// defaults or a YAML file and as a comma or space separated string from
// the environment. Unparsable entries are skipped.
func brushWeights() []float64 {
	var raw []string
	switch v := viper.Get(weightBrushesKey).(type) {
	case []float64:
		return append([]float64(nil), v...)
	case []any:
		for _, item := range v {
			raw = append(raw, fmt.Sprint(item))
		}
	case string:
		raw = strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	}

	out := make([]float64, 0, len(raw))
	for _, s := range raw {
		w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			continue
		}
		out = append(out, w)
	}

	return out
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs a rotating file logger as the slog default.
// The terminal belongs to the UI, so nothing is logged to stdout.
//
// By default it logs at the configured level; verbose forces Debug.
func configureLogger(logPath string, verbose bool) *slog.Logger {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
