package protocol_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	. "github.com/black-desk/lib/go/gomega-helper"
	. "github.com/black-desk/watchmux/pkg/protocol"
	"github.com/black-desk/watchmux/pkg/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	decoder := func(input string) *Decoder {
		d, err := NewDecoder(WithReader(strings.NewReader(input)))
		Expect(err).To(Succeed())
		return d
	}

	It("should decode commands in order", func() {
		d := decoder(`{"type":"watch","id":1,"root":"/tmp/x"}` + "\n" +
			"\n" +
			`  {"type":"unwatch","id":1}  ` + "\n")

		cmd, err := d.Next()
		Expect(err).To(Succeed())
		Expect(cmd).To(Equal(&Watch{ID: 1, Root: "/tmp/x"}))

		cmd, err = d.Next()
		Expect(err).To(Succeed())
		Expect(cmd).To(Equal(&Unwatch{ID: 1}))

		_, err = d.Next()
		Expect(err).To(MatchErr(io.EOF))
	})

	It("should accept a last line without newline", func() {
		d := decoder(`{"type":"unwatch","id":7}`)

		cmd, err := d.Next()
		Expect(err).To(Succeed())
		Expect(cmd.CommandID()).To(Equal(types.WatchID(7)))
	})

	DescribeTable("should reject a malformed line",
		func(line string, id types.WatchID) {
			d := decoder(line + "\n" + `{"type":"unwatch","id":2}` + "\n")

			_, err := d.Next()

			var malformed *MalformedCommandError
			Expect(errors.As(err, &malformed)).To(BeTrue())
			Expect(malformed.ID).To(Equal(id))

			cmd, err := d.Next()
			Expect(err).To(Succeed())
			Expect(cmd).To(Equal(&Unwatch{ID: 2}))
		},
		Entry("not json", `hello`, types.WatchID(0)),
		Entry("unknown type", `{"type":"frobnicate","id":3}`, types.WatchID(3)),
		Entry("missing type", `{"id":4}`, types.WatchID(4)),
		Entry("missing id", `{"type":"unwatch"}`, types.WatchID(0)),
		Entry("missing root", `{"type":"watch","id":5}`, types.WatchID(5)),
		Entry("wrong root type", `{"type":"watch","id":6,"root":6}`, types.WatchID(6)),
	)

	It("should skip a line that is too long and go on", func() {
		d := decoder(`{"type":"watch","id":1,"root":"/` +
			strings.Repeat("a", 17*1024*1024) + `"}` + "\n" +
			`{"type":"unwatch","id":2}` + "\n")

		_, err := d.Next()

		var malformed *MalformedCommandError
		Expect(errors.As(err, &malformed)).To(BeTrue())
		Expect(malformed.ID).To(Equal(types.WatchID(0)))
		Expect(err).To(MatchErr(ErrLineTooLong))

		cmd, err := d.Next()
		Expect(err).To(Succeed())
		Expect(cmd).To(Equal(&Unwatch{ID: 2}))

		_, err = d.Next()
		Expect(err).To(MatchErr(io.EOF))
	})

	It("should report a last line that is too long", func() {
		d := decoder(strings.Repeat(" ", 17*1024*1024) + "x")

		_, err := d.Next()
		Expect(err).To(MatchErr(ErrLineTooLong))

		_, err = d.Next()
		Expect(err).To(MatchErr(io.EOF))
	})

	It("should report an unknown command type", func() {
		_, err := decoder(`{"type":"frobnicate","id":3}`).Next()

		var unknown *ErrUnknownCommandType
		Expect(errors.As(err, &unknown)).To(BeTrue())
		Expect(unknown.Type).To(Equal(CommandType("frobnicate")))
	})

	It("should require a reader", func() {
		_, err := NewDecoder()
		Expect(err).To(MatchErr(ErrReaderMissing))
	})
})

var _ = Describe("Encoder", func() {
	var (
		buf *bytes.Buffer
		enc *Encoder
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}

		var err error
		enc, err = NewEncoder(buf)
		Expect(err).To(Succeed())
	})

	DescribeTable("should write one line per message",
		func(msg Message, line string) {
			Expect(enc.Encode(msg)).To(Succeed())
			Expect(buf.String()).To(Equal(line + "\n"))
		},
		Entry("ok", NewOK(1), `{"type":"ok","id":1}`),
		Entry("error",
			NewError(2, errors.New("No watch exists with id 2")),
			`{"type":"error","id":2,"description":"No watch exists with id 2"}`,
		),
		Entry("modified",
			NewEventMessage(&types.Event{
				Action: types.EventActionModified, WatchID: 1, Path: "/a/f",
			}),
			`{"action":"modified","watchId":1,"path":"/a/f"}`,
		),
		Entry("created",
			NewEventMessage(&types.Event{
				Action: types.EventActionCreated, WatchID: 1, Path: "/tmp/x/file",
			}),
			`{"action":"created","watchId":1,"path":"/tmp/x/file"}`,
		),
		Entry("deleted",
			NewEventMessage(&types.Event{
				Action: types.EventActionDeleted, WatchID: 3, Path: "/a/x/",
			}),
			`{"action":"deleted","watchId":3,"path":"/a/x"}`,
		),
		Entry("renamed",
			NewEventMessage(&types.Event{
				Action: types.EventActionRenamed, WatchID: 1,
				Path: "/a/y", OldPath: "/a/x",
			}),
			`{"action":"renamed","watchId":1,"path":"/a/y","oldPath":"/a/x"}`,
		),
		Entry("html in path",
			NewEventMessage(&types.Event{
				Action: types.EventActionCreated, WatchID: 1, Path: "/a/<b>&c",
			}),
			`{"action":"created","watchId":1,"path":"/a/<b>&c"}`,
		),
	)
})

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

var _ = Describe("Emitter", func() {
	It("should write messages in emission order and drain on stop", func() {
		buf := &bytes.Buffer{}
		enc, err := NewEncoder(buf)
		Expect(err).To(Succeed())
		e, err := NewEmitter(WithEncoder(enc))
		Expect(err).To(Succeed())

		for i := 1; i <= 100; i++ {
			e.Emit(NewOK(types.WatchID(i)))
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(e.Run(ctx)).To(MatchErr(context.Canceled))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(100))
		Expect(lines[0]).To(Equal(`{"type":"ok","id":1}`))
		Expect(lines[99]).To(Equal(`{"type":"ok","id":100}`))
	})

	It("should fail on a write error", func() {
		enc, err := NewEncoder(failingWriter{})
		Expect(err).To(Succeed())
		e, err := NewEmitter(WithEncoder(enc))
		Expect(err).To(Succeed())

		done := make(chan error, 1)
		go func() {
			done <- e.Run(context.Background())
		}()

		e.Emit(NewOK(1))
		Eventually(done).Should(Receive(MatchErr(io.ErrClosedPipe)))
	})

	It("should require an encoder", func() {
		_, err := NewEmitter()
		Expect(err).To(MatchErr(ErrEncoderMissing))
	})
})

func TestProtocol(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Protocol Suite")
}
