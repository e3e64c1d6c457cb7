package debounce_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	. "github.com/black-desk/lib/go/gomega-helper"
	. "github.com/black-desk/watchmux/pkg/debounce"
	"github.com/black-desk/watchmux/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const delay = 100 * time.Millisecond

var _ = Describe("Debouncer", func() {
	var (
		mock   *clock.Mock
		d      *Debouncer
		ctx    context.Context
		cancel context.CancelFunc
		done   chan error
		got    []types.RawEvent
		err    error
	)

	drain := func() {
		for {
			select {
			case event, ok := <-d.Events():
				if !ok {
					return
				}
				got = append(got, event)
			default:
				return
			}
		}
	}

	// advance moves the mock clock forward a little and
	// returns everything delivered so far.
	advance := func() []types.RawEvent {
		mock.Add(delay / 4)
		drain()
		return got
	}

	BeforeEach(func() {
		got = nil
		mock = clock.NewMock()

		d, err = New(
			WithDelay(delay),
			WithClock(mock),
		)
		Expect(err).To(Succeed())

		ctx, cancel = context.WithCancel(context.Background())
		done = make(chan error, 1)
		go func() {
			done <- d.Run(ctx)
		}()
	})

	AfterEach(func() {
		cancel()
		Eventually(done).Should(Receive(MatchErr(context.Canceled)))
	})

	It("should report a created then written file as created", func() {
		d.Push(Primitive{Op: OpCreate, Path: "/a/f"})
		d.Push(Primitive{Op: OpWrite, Path: "/a/f"})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeCreate, Path: "/a/f"},
		}))
	})

	It("should give notice of a write before the debounced write", func() {
		d.Push(Primitive{Op: OpWrite, Path: "/a/f"})
		d.Push(Primitive{Op: OpWrite, Path: "/a/f"})
		d.Push(Primitive{Op: OpWrite, Path: "/a/f"})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeNoticeWrite, Path: "/a/f"},
			{Type: types.RawEventTypeWrite, Path: "/a/f"},
		}))
	})

	It("should drop a file created and removed within the window", func() {
		d.Push(Primitive{Op: OpCreate, Path: "/a/tmp"})
		d.Push(Primitive{Op: OpRemove, Path: "/a/tmp"})

		for i := 0; i < 10; i++ {
			advance()
		}
		Consistently(advance).Should(BeEmpty())
	})

	It("should report a removed then recreated file as written", func() {
		d.Push(Primitive{Op: OpRemove, Path: "/a/f"})
		d.Push(Primitive{Op: OpCreate, Path: "/a/f"})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeNoticeRemove, Path: "/a/f"},
			{Type: types.RawEventTypeWrite, Path: "/a/f"},
		}))
	})

	It("should report a written then removed file as removed", func() {
		d.Push(Primitive{Op: OpWrite, Path: "/a/f"})
		d.Push(Primitive{Op: OpRemove, Path: "/a/f"})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeNoticeWrite, Path: "/a/f"},
			{Type: types.RawEventTypeRemove, Path: "/a/f"},
		}))
	})

	It("should report a lone chmod", func() {
		d.Push(Primitive{Op: OpChmod, Path: "/a/f"})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeChmod, Path: "/a/f"},
		}))
	})

	It("should pair renames by cookie", func() {
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/x", Cookie: 42})
		d.Push(Primitive{Op: OpRenameTo, Path: "/a/y", Cookie: 42})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeRename, Path: "/a/y", OldPath: "/a/x"},
		}))
	})

	It("should pair renames whose destination arrives first", func() {
		d.Push(Primitive{Op: OpRenameTo, Path: "/a/y", Cookie: 42})
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/x", Cookie: 42})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeRename, Path: "/a/y", OldPath: "/a/x"},
		}))
	})

	It("should merge a late rename source with its pending creation", func() {
		d.Push(Primitive{Op: OpCreate, Path: "/a/x"})
		d.Push(Primitive{Op: OpRenameTo, Path: "/a/y", Cookie: 1})
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/x", Cookie: 1})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeCreate, Path: "/a/y"},
		}))
	})

	It("should turn a created then renamed file into a creation at the new path", func() {
		d.Push(Primitive{Op: OpCreate, Path: "/a/x"})
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/x", Cookie: 1})
		d.Push(Primitive{Op: OpRenameTo, Path: "/a/y", Cookie: 1})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeCreate, Path: "/a/y"},
		}))
	})

	It("should collapse a chain of renames", func() {
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/x", Cookie: 1})
		d.Push(Primitive{Op: OpRenameTo, Path: "/a/y", Cookie: 1})
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/y", Cookie: 2})
		d.Push(Primitive{Op: OpRenameTo, Path: "/a/z", Cookie: 2})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeRename, Path: "/a/z", OldPath: "/a/x"},
		}))
	})

	It("should report a renamed then removed file as removal of the original", func() {
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/x", Cookie: 1})
		d.Push(Primitive{Op: OpRenameTo, Path: "/a/y", Cookie: 1})
		d.Push(Primitive{Op: OpRemove, Path: "/a/y"})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeRemove, Path: "/a/x"},
		}))
	})

	It("should expire an unpaired rename source into a removal", func() {
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/x", Cookie: 9})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeRemove, Path: "/a/x"},
		}))
	})

	It("should expire a renamed file moved out as removal of the original", func() {
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/x", Cookie: 1})
		d.Push(Primitive{Op: OpRenameTo, Path: "/a/y", Cookie: 1})
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/y", Cookie: 2})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeRemove, Path: "/a/x"},
		}))
	})

	It("should treat an unpaired rename destination as a creation", func() {
		d.Push(Primitive{Op: OpRenameTo, Path: "/a/x", Cookie: 9})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeCreate, Path: "/a/x"},
		}))
	})

	It("should treat a rename source without cookie as a removal", func() {
		d.Push(Primitive{Op: OpRenameFrom, Path: "/a/x"})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeNoticeRemove, Path: "/a/x"},
			{Type: types.RawEventTypeRemove, Path: "/a/x"},
		}))
	})

	It("should keep first-seen order across paths", func() {
		d.Push(Primitive{Op: OpCreate, Path: "/a/1"})
		d.Push(Primitive{Op: OpCreate, Path: "/a/2"})
		d.Push(Primitive{Op: OpCreate, Path: "/a/3"})
		d.Push(Primitive{Op: OpWrite, Path: "/a/1"})

		Eventually(advance).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeCreate, Path: "/a/1"},
			{Type: types.RawEventTypeCreate, Path: "/a/2"},
			{Type: types.RawEventTypeCreate, Path: "/a/3"},
		}))
	})

	It("should pass rescans and errors through at once", func() {
		boom := errors.New("boom")
		d.Push(Primitive{Op: OpRescan})
		d.Push(Primitive{Op: OpError, Path: "/a", Err: boom})

		Eventually(func() []types.RawEvent {
			drain()
			return got
		}).Should(Equal([]types.RawEvent{
			{Type: types.RawEventTypeRescan},
			{Type: types.RawEventTypeError, Path: "/a", Err: boom},
		}))
	})

	It("should close the event channel when stopped", func() {
		cancel()
		Eventually(d.Events()).Should(BeClosed())
	})
})

var _ = Describe("Debouncer without delay", func() {
	It("should deliver events immediately", func() {
		d, err := New(WithDelay(0))
		Expect(err).To(Succeed())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go d.Run(ctx)

		d.Push(Primitive{Op: OpCreate, Path: "/a/f"})
		Eventually(d.Events()).Should(Receive(Equal(types.RawEvent{
			Type: types.RawEventTypeCreate,
			Path: "/a/f",
		})))
	})
})

var _ = Describe("Creating a debouncer", func() {
	It("should reject a negative delay", func() {
		_, err := New(WithDelay(-time.Second))
		Expect(err).To(MatchErr(ErrNegativeDelay))
	})

	It("should reject a nil clock", func() {
		_, err := New(WithClock(nil))
		Expect(err).To(MatchErr(ErrClockMissing))
	})
})

func TestDebounce(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Debounce Suite")
}
