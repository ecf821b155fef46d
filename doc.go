// Package graphics is a simple object-oriented graphics library for
// learning and teaching. It draws shapes into native windows through a
// small set of object types: Point, Line, Circle, Oval, Rectangle,
// Polygon, Text, Entry, and Image, plus the GraphWin window they draw
// into.
//
// Every object follows the same life cycle: construct it, Draw it into
// a window, change it with Move and the attribute setters, and Undraw
// it. Drawn objects update on screen immediately unless the window was
// created with NoAutoflush.
//
//	win, err := graphics.NewGraphWin("demo", 400, 300)
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, _ := graphics.NewCircle(graphics.NewPoint(200, 150), 40)
//	c.SetFill(graphics.Red)
//	c.Draw(win)
//	win.GetMouse() // wait for a click
//	win.Close()
//
// Mouse clicks and key presses are buffered in FIFO order and consumed
// with GetMouse/GetKey (blocking) or CheckMouse/CheckKey (polling).
// SetCoords installs user-defined world coordinates with the Y axis
// pointing up.
//
// Windows created with the Offscreen option render to memory only,
// which suits headless image generation with SavePNG and tests.
package graphics
