package xwin

import (
	"image"
	"log/slog"
	"runtime"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// X11 is a Backend over one X protocol window. The connection is pure Go
// (BurntSushi/xgb); no display libraries are linked.
type X11 struct {
	conn   *xgb.Conn
	win    xproto.Window
	screen *xproto.ScreenInfo
	gctx   xproto.Gcontext
	km     *KMap
	log    *slog.Logger

	width, height int

	atomWMProtocols    xproto.Atom
	atomWMDeleteWindow xproto.Atom
	atomNetWMName      xproto.Atom
	atomUTF8String     xproto.Atom

	events chan Event

	mu     sync.Mutex
	last   *image.RGBA // most recently flushed frame, re-blitted on Expose
	closed bool
}

// NewX11 connects to the display and creates a mapped window of the
// given size.
func NewX11(title string, width, height int, log *slog.Logger) (*X11, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		if runtime.GOOS == "darwin" {
			err = errors.WithMessage(err, "macOS might need XQuartz installed")
		}
		return nil, errors.Wrap(err, "x conn")
	}
	x := &X11{
		conn:   conn,
		log:    log,
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	if err := x.init(title); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go x.eventLoop()

	return x, nil
}

func (x *X11) init(title string) error {
	si := xproto.Setup(x.conn)
	x.screen = si.DefaultScreen(x.conn)

	win, err := xproto.NewWindowId(x.conn)
	if err != nil {
		return err
	}
	x.win = win

	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwBackPixel | xproto.CwEventMask)
	values := []uint32{
		x.screen.WhitePixel,
		xproto.EventMaskExposure |
			xproto.EventMaskButtonPress |
			xproto.EventMaskKeyPress,
	}

	_ = xproto.CreateWindow(
		x.conn,
		x.screen.RootDepth,
		x.win,
		x.screen.Root,
		0, 0, uint16(x.width), uint16(x.height),
		0, // border width
		xproto.WindowClassInputOutput,
		x.screen.RootVisual,
		mask, values)

	if err := x.loadAtoms(); err != nil {
		return err
	}

	// Ask for the close button instead of a dropped connection.
	buf := make([]byte, 4)
	xgb.Put32(buf, uint32(x.atomWMDeleteWindow))
	_ = xproto.ChangeProperty(x.conn, xproto.PropModeReplace, x.win,
		x.atomWMProtocols, xproto.AtomAtom, 32, 1, buf)

	if err := x.SetTitle(title); err != nil {
		return err
	}

	gctx, err := xproto.NewGcontextId(x.conn)
	if err != nil {
		return err
	}
	x.gctx = gctx
	_ = xproto.CreateGC(x.conn, x.gctx, xproto.Drawable(x.win), 0, nil)

	km, err := NewKMap(x.conn)
	if err != nil {
		return err
	}
	x.km = km

	_ = xproto.MapWindow(x.conn, x.win)

	x.log.Info("x11 window mapped", "width", x.width, "height", x.height)
	return nil
}

func (x *X11) loadAtoms() error {
	intern := func(name string) (xproto.Atom, error) {
		reply, err := xproto.InternAtom(x.conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return 0, errors.Wrapf(err, "intern atom %s", name)
		}
		return reply.Atom, nil
	}
	var err error
	if x.atomWMProtocols, err = intern("WM_PROTOCOLS"); err != nil {
		return err
	}
	if x.atomWMDeleteWindow, err = intern("WM_DELETE_WINDOW"); err != nil {
		return err
	}
	if x.atomNetWMName, err = intern("_NET_WM_NAME"); err != nil {
		return err
	}
	if x.atomUTF8String, err = intern("UTF8_STRING"); err != nil {
		return err
	}
	return nil
}

// SetTitle implements Backend.
func (x *X11) SetTitle(title string) error {
	b := []byte(title)
	_ = xproto.ChangeProperty(x.conn, xproto.PropModeReplace, x.win,
		x.atomNetWMName, x.atomUTF8String, 8, uint32(len(b)), b)
	_ = xproto.ChangeProperty(x.conn, xproto.PropModeReplace, x.win,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(b)), b)
	return nil
}

// Events implements Backend.
func (x *X11) Events() <-chan Event { return x.events }

// Flush implements Backend. The frame is converted to the server pixel
// layout and sent with PutImage, split into bands that fit the maximum
// request length.
func (x *X11) Flush(img *image.RGBA) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed {
		return errors.New("x11: window closed")
	}
	x.last = img
	x.blitLocked(img)
	return nil
}

func (x *X11) blitLocked(img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	// 32bpp ZPixmap in LSBFirst server order: B, G, R, pad.
	data := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dst := data[y*w*4:]
		for i := 0; i < w*4; i += 4 {
			dst[i+0] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+0]
			dst[i+3] = 0xff
		}
	}

	// PutImage carries 24 bytes of header; stay under the request limit.
	si := xproto.Setup(x.conn)
	maxBytes := int(si.MaximumRequestLength)*4 - 28
	stride := w * 4
	bandRows := maxBytes / stride
	if bandRows < 1 {
		bandRows = 1
	}

	for y := 0; y < h; y += bandRows {
		rows := bandRows
		if y+rows > h {
			rows = h - y
		}
		_ = xproto.PutImage(x.conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(x.win),
			x.gctx,
			uint16(w), uint16(rows),
			0, int16(y),
			0, x.screen.RootDepth,
			data[y*stride:(y+rows)*stride])
	}
	x.log.Debug("x11 blit", "width", w, "height", h, "bands", (h+bandRows-1)/bandRows)
}

// PointerPosition implements Backend.
func (x *X11) PointerPosition() (image.Point, bool) {
	reply, err := xproto.QueryPointer(x.conn, x.win).Reply()
	if err != nil {
		return image.Point{}, false
	}
	return image.Point{X: int(reply.WinX), Y: int(reply.WinY)}, reply.SameScreen
}

// Close implements Backend. The event loop notices the dropped
// connection and closes the event channel.
func (x *X11) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.closed {
		return nil
	}
	x.closed = true
	x.conn.Close()
	return nil
}

// eventLoop pumps X events into the event channel until the connection
// ends. Runs on its own goroutine.
func (x *X11) eventLoop() {
	for {
		ev, xerr := x.conn.WaitForEvent()
		if ev == nil && xerr == nil {
			// connection closed
			x.send(WindowClosed{})
			close(x.events)
			return
		}
		if xerr != nil {
			x.log.Warn("x11 event error", "err", xerr.Error())
			continue
		}
		switch e := ev.(type) {
		case xproto.ExposeEvent:
			x.mu.Lock()
			if x.last != nil && !x.closed {
				x.blitLocked(x.last)
			}
			x.mu.Unlock()

		case xproto.ButtonPressEvent:
			x.send(MouseDown{
				Button: uint32(e.Detail),
				X:      int(e.EventX),
				Y:      int(e.EventY),
			})

		case xproto.KeyPressEvent:
			r, name := x.km.Lookup(e.Detail, e.State)
			if name == "" {
				continue
			}
			x.send(KeyDown{Rune: r, Name: name})

		case xproto.MappingNotifyEvent:
			if err := x.km.ReadTable(x.conn); err != nil {
				x.log.Warn("x11 keyboard remap failed", "err", err)
			}

		case xproto.ClientMessageEvent:
			if e.Type == x.atomWMProtocols &&
				len(e.Data.Data32) > 0 &&
				xproto.Atom(e.Data.Data32[0]) == x.atomWMDeleteWindow {
				x.send(WindowClosed{})
			}
		}
	}
}

// send delivers an event without blocking the X read loop; a full buffer
// drops the event.
func (x *X11) send(ev Event) {
	select {
	case x.events <- ev:
	default:
		x.log.Warn("x11 event dropped", "event", ev)
	}
}
