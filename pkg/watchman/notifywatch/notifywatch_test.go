package notifywatch_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	. "github.com/black-desk/lib/go/gomega-helper"
	"github.com/black-desk/watchmux/pkg/debounce"
	"github.com/black-desk/watchmux/pkg/types"
	"github.com/black-desk/watchmux/pkg/watchman"
	. "github.com/black-desk/watchmux/pkg/watchman/notifywatch"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Notify watcher", func() {
	var (
		w      *Watcher
		tmpDir string
		ctx    context.Context
		cancel context.CancelFunc
		done   chan error
		got    []types.RawEvent
		err    error
	)

	collect := func() []types.RawEvent {
		for {
			select {
			case event, ok := <-w.Events():
				if !ok {
					return got
				}
				got = append(got, event)
			default:
				return got
			}
		}
	}

	BeforeEach(func() {
		got = nil

		tmpDir, err = os.MkdirTemp("", "watchmux-*")
		Expect(err).To(Succeed())
		tmpDir, err = filepath.EvalSymlinks(tmpDir)
		Expect(err).To(Succeed())

		var deb *debounce.Debouncer
		deb, err = debounce.New(debounce.WithDelay(0))
		Expect(err).To(Succeed())

		w, err = New(WithDebouncer(deb))
		Expect(err).To(Succeed())

		ctx, cancel = context.WithCancel(context.Background())
		done = make(chan error, 1)
		go func() {
			done <- w.Run(ctx)
		}()
	})

	AfterEach(func() {
		cancel()
		Eventually(done).Should(Receive(MatchErr(context.Canceled)))

		err = os.RemoveAll(tmpDir)
		Expect(err).To(Succeed())
	})

	It("should report a created file", func() {
		Expect(w.Watch(tmpDir)).To(Succeed())

		file := filepath.Join(tmpDir, "f")
		Expect(os.WriteFile(file, []byte("x"), 0o644)).To(Succeed())

		Eventually(collect).Should(ContainElement(types.RawEvent{
			Type: types.RawEventTypeCreate,
			Path: file,
		}))
	})

	It("should report events below a nested directory", func() {
		sub := filepath.Join(tmpDir, "a", "b")
		Expect(os.MkdirAll(sub, 0o755)).To(Succeed())
		Expect(w.Watch(tmpDir)).To(Succeed())

		file := filepath.Join(sub, "f")
		Expect(os.WriteFile(file, nil, 0o644)).To(Succeed())

		Eventually(collect).Should(ContainElement(types.RawEvent{
			Type: types.RawEventTypeCreate,
			Path: file,
		}))
	})

	It("should report a file once when watched through nested roots", func() {
		sub := filepath.Join(tmpDir, "sub")
		Expect(os.Mkdir(sub, 0o755)).To(Succeed())
		Expect(w.Watch(tmpDir)).To(Succeed())
		Expect(w.Watch(sub)).To(Succeed())

		file := filepath.Join(sub, "f")
		Expect(os.WriteFile(file, nil, 0o644)).To(Succeed())

		created := types.RawEvent{Type: types.RawEventTypeCreate, Path: file}
		Eventually(collect).Should(ContainElement(created))
		Consistently(func() int {
			n := 0
			for _, event := range collect() {
				if event == created {
					n++
				}
			}
			return n
		}, 200*time.Millisecond).Should(Equal(1))
	})

	It("should keep a root subscribed until the last unwatch", func() {
		Expect(w.Watch(tmpDir)).To(Succeed())
		Expect(w.Watch(tmpDir)).To(Succeed())

		Expect(w.Unwatch(tmpDir)).To(Succeed())

		file := filepath.Join(tmpDir, "f")
		Expect(os.WriteFile(file, nil, 0o644)).To(Succeed())
		Eventually(collect).Should(ContainElement(types.RawEvent{
			Type: types.RawEventTypeCreate,
			Path: file,
		}))

		Expect(w.Unwatch(tmpDir)).To(Succeed())
		Expect(w.Unwatch(tmpDir)).To(MatchErr(watchman.ErrNotWatched))
	})

	It("should reject unwatching an unknown root", func() {
		Expect(w.Unwatch(tmpDir)).To(MatchErr(watchman.ErrNotWatched))
	})

	It("should fail to watch a missing root", func() {
		Expect(w.Watch(filepath.Join(tmpDir, "missing"))).NotTo(Succeed())
	})

	It("should pair both ends of a rename", func() {
		if runtime.GOOS != "linux" {
			Skip("rename cookies are only available from inotify")
		}

		from := filepath.Join(tmpDir, "x")
		to := filepath.Join(tmpDir, "y")
		Expect(os.WriteFile(from, nil, 0o644)).To(Succeed())
		Expect(w.Watch(tmpDir)).To(Succeed())

		Expect(os.Rename(from, to)).To(Succeed())

		Eventually(collect).Should(ContainElement(types.RawEvent{
			Type:    types.RawEventTypeRename,
			Path:    to,
			OldPath: from,
		}))
	})
})

var _ = Describe("Creating a notify watcher", func() {
	It("should require a debouncer", func() {
		_, err := New()
		Expect(err).To(MatchErr(watchman.ErrDebouncerMissing))
	})
})

func TestNotifyWatch(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Notify Watcher Suite")
}
