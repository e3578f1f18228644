package furikana

import (
	"fmt"

	log "github.com/cihub/seelog"
)

var appLogConfig = `
<seelog type="sync" minlevel='%s'>
	<outputs formatid="furikana">
		<console />
	</outputs>
	<formats>
		<format id="furikana" format="furikana: [%%LEV] %%Msg%%n" />
	</formats>
</seelog>
`

// SetupLogging replaces the seelog logger with a console logger whose level
// follows verbosity: 0-1 warn, 2 info, 3 and above trace.
func SetupLogging(verbosity int) error {
	var level string
	switch {
	case verbosity <= 1:
		level = "warn"
	case verbosity == 2:
		level = "info"
	default:
		level = "trace"
	}

	logger, err := log.LoggerFromConfigAsBytes([]byte(fmt.Sprintf(appLogConfig, level)))
	if err != nil {
		return err
	}
	return log.ReplaceLogger(logger)
}
