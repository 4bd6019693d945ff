package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// callerDepth is the number of frames between the hook and the CPrint /
// VPrint call site (printWith, logrus entry plumbing and hook firing).
const callerDepth = 8

type functionHooker struct {
	innerLogger *Logger
	file        string
}

func shortFuncName(fname string) string {
	if strings.Contains(fname, "/") {
		index := strings.LastIndex(fname, "/")
		return fname[index+1:]
	}
	return fname
}

func (h *functionHooker) fire(entry *logrus.Entry) {
	pc, _, _, ok := runtime.Caller(callerDepth)
	if !ok {
		return
	}

	f := runtime.FuncForPC(pc)
	file, line := f.FileLine(pc)
	entry.Data["func"] = shortFuncName(f.Name())
	entry.Data["line"] = line
	entry.Data["file"] = filepath.Base(file)
}

func (h *functionHooker) fires(entry *logrus.Entry) {
	for i := callerDepth; i < callerDepth+3; i++ {
		pc, _, _, ok := runtime.Caller(i)
		if !ok {
			break
		}
		f := runtime.FuncForPC(pc)
		file, line := f.FileLine(pc)
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}", filepath.Base(file), shortFuncName(f.Name()), line)
	}
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	if h.innerLogger.CallRelation == MsgFormatMulti {
		h.fires(entry)
	} else if h.innerLogger.CallRelation == MsgFormatSingle {
		h.fire(entry)
	}
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
		logrus.TraceLevel,
	}
}

// LoadFunctionHooker loads a function hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
	}
	inst := &functionHooker{
		innerLogger: logger,
		file:        file,
	}
	logger.Hooks.Add(inst)
}
