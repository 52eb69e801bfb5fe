/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package options

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingOptions are shared by all commands.
type LoggingOptions struct {
	// Debug turns on verbose, human readable output.
	Debug bool
	// JSON forces structured output even in debug mode.
	JSON bool
}

func (o *LoggingOptions) AddFlags(f *pflag.FlagSet) {
	f.BoolVar(&o.Debug, "debug", false, "Enable debug logging.")
	f.BoolVar(&o.JSON, "log-json", false, "Always log in JSON.")
}

// SetupLogging returns the root logger.  Production output is JSON at info
// level, debug output is console formatted and includes V(1) messages.
func (o *LoggingOptions) SetupLogging() (logr.Logger, error) {
	config := zap.NewProductionConfig()

	if o.Debug {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if o.JSON {
		config.Encoding = "json"
		config.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := config.Build()
	if err != nil {
		return logr.Discard(), err
	}

	return zapr.NewLogger(zapLogger), nil
}
