// Package profilers adds Go's pprof profiling to the connect4 binaries: it is mostly used to measure
// how many nodes per second the searchers get through.
//
// Importing it registers the flags -prof (HTTP pprof server port), -cpu_profile and -mem_profile.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagHTTPPort   = flag.Int("prof", -1, "Port of the HTTP pprof server. If set (>= 0), the program waits for Ctrl+C before exiting.")
	flagCPUProfile = flag.String("cpu_profile", "", "Write a CPU profile of the whole run to `file`.")
	flagMemProfile = flag.String("mem_profile", "", "Write a heap profile to `file` when the program finishes.")
)

// session holds what Setup started, so OnQuit can stop it.
var session struct {
	ctx      context.Context
	httpAddr string
	cpuFile  *os.File
}

// Setup starts whatever profiling the flags ask for. Call it after flag.Parse, and defer OnQuit
// right after it.
//
// ctx is the program's context: with -prof, OnQuit blocks until it is cancelled.
func Setup(ctx context.Context) error {
	session.ctx = ctx
	if *flagCPUProfile != "" {
		f, err := startCPUProfile(*flagCPUProfile)
		if err != nil {
			return err
		}
		session.cpuFile = f
	}
	if *flagHTTPPort >= 0 {
		session.httpAddr = fmt.Sprintf("localhost:%d", *flagHTTPPort)
		go func() {
			klog.Errorf("pprof HTTP server on %s stopped: %v", session.httpAddr, http.ListenAndServe(session.httpAddr, nil))
		}()
		fmt.Printf("pprof: serving on http://%s/debug/pprof (e.g. $ go tool pprof http://%s/debug/pprof/profile)\n",
			session.httpAddr, session.httpAddr)
	}
	return nil
}

// OnQuit flushes the profiles started by Setup and, with -prof, keeps the server up until the
// program's context is cancelled.
func OnQuit() {
	if session.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := session.cpuFile.Close(); err != nil {
			klog.Errorf("closing CPU profile %q: %+v", *flagCPUProfile, err)
		} else {
			klog.Infof("CPU profile saved in %q", *flagCPUProfile)
		}
		session.cpuFile = nil
	}
	if *flagMemProfile != "" {
		if err := writeHeapProfile(*flagMemProfile); err != nil {
			klog.Errorf("%+v", err)
		}
	}
	if session.httpAddr != "" && session.ctx != nil && session.ctx.Err() == nil {
		fmt.Printf("pprof: match over, still serving on http://%s/debug/pprof. Ctrl+C to exit.\n", session.httpAddr)
		<-session.ctx.Done()
	}
}

func startCPUProfile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating CPU profile file")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "starting CPU profile in %q", path)
	}
	return f, nil
}

// writeHeapProfile runs a garbage collection first, so the profile reflects only live objects.
func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating heap profile file")
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing heap profile to %q", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing heap profile %q", path)
	}
	klog.V(1).Infof("Heap profile saved in %q", path)
	return nil
}
