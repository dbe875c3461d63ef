package gui_test

import (
	"testing"

	"github.com/go-theft-auto/dockspace/gui"
)

func TestDrawListAddRect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(10, 20, 100, 50, gui.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Errorf("expected 6 indices, got %d", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("expected 1 command, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("command ElemCount = %d, want 6", dl.CmdBuffer[0].ElemCount)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, 0x00FFFFFF) // alpha 0
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Error("fully transparent rect should produce no geometry")
	}
}

func TestDrawListAddImageBatching(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddImage(42, 0, 0, 100, 100, gui.Vec2{X: 0, Y: 1}, gui.Vec2{X: 1, Y: 0}, gui.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("expected 1 command, got %d", len(dl.CmdBuffer))
	}
	cmd := dl.CmdBuffer[0]
	if cmd.TextureID != 42 {
		t.Errorf("command TextureID = %d, want 42", cmd.TextureID)
	}
	if cmd.ElemCount != 6 {
		t.Errorf("command ElemCount = %d, want 6", cmd.ElemCount)
	}

	// The FBO flip convention: top-left vertex carries uv0.
	if tc := dl.VtxBuffer[0].TexCoord; tc != [2]float32{0, 1} {
		t.Errorf("top-left TexCoord = %v, want {0,1}", tc)
	}
	if tc := dl.VtxBuffer[2].TexCoord; tc != [2]float32{1, 0} {
		t.Errorf("bottom-right TexCoord = %v, want {1,0}", tc)
	}
}

func TestDrawListAddImageRestoresTexture(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.AddImage(7, 0, 0, 100, 100, gui.Vec2{}, gui.Vec2{X: 1, Y: 1}, gui.ColorWhite)
	dl.AddRect(20, 0, 10, 10, gui.ColorWhite)
	dl.Finalize()

	// rect batch, image batch, rect batch again
	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 || dl.CmdBuffer[1].TextureID != 7 || dl.CmdBuffer[2].TextureID != 0 {
		t.Errorf("texture sequence = %d,%d,%d, want 0,7,0",
			dl.CmdBuffer[0].TextureID, dl.CmdBuffer[1].TextureID, dl.CmdBuffer[2].TextureID)
	}
	for i, cmd := range dl.CmdBuffer {
		if cmd.ElemCount != 6 {
			t.Errorf("command %d ElemCount = %d, want 6", i, cmd.ElemCount)
		}
	}
}

func TestDrawListAddImageZeroTexture(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddImage(0, 0, 0, 100, 100, gui.Vec2{}, gui.Vec2{X: 1, Y: 1}, gui.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 {
		t.Error("texture 0 has nothing to sample; no quad expected")
	}
}

func TestDrawListInsertRect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(10, 10, 20, 20, gui.ColorWhite)
	dl.InsertRect(0, 0, 100, 100, gui.ColorBlack)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}

	// The inserted background renders first, from the buffer start.
	bg := dl.CmdBuffer[0]
	if bg.VertexOffset != 0 || bg.IndexOffset != 0 || bg.ElemCount != 6 {
		t.Errorf("background command = %+v", bg)
	}
	if dl.VtxBuffer[0].Pos != [2]float32{0, 0} {
		t.Errorf("first vertex = %v, want the background origin", dl.VtxBuffer[0].Pos)
	}

	// The original command shifts past the inserted quad.
	orig := dl.CmdBuffer[1]
	if orig.VertexOffset != 4 {
		t.Errorf("original VertexOffset = %d, want 4", orig.VertexOffset)
	}
	if orig.IndexOffset != 6 {
		t.Errorf("original IndexOffset = %d, want 6", orig.IndexOffset)
	}
	if orig.ElemCount != 6 {
		t.Errorf("original ElemCount = %d, want 6", orig.ElemCount)
	}
}

func TestDrawListClipRectSplitsCommands(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.PushClipRect(0, 0, 50, 50)
	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(dl.CmdBuffer))
	}
	if clip := dl.CmdBuffer[1].ClipRect; clip != [4]float32{0, 0, 50, 50} {
		t.Errorf("clipped command ClipRect = %v", clip)
	}
	if clip := dl.CmdBuffer[2].ClipRect; clip == [4]float32{0, 0, 50, 50} {
		t.Error("pop should restore the previous clip rect")
	}
}

func TestDrawListFinalizeDropsEmptyCommands(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 50, 50)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("expected the empty clip commands to be dropped, got %d commands", len(dl.CmdBuffer))
	}
}

func TestDrawListAddText(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddText(0, 0, "abc", gui.ColorWhite, 1.0, 8, 8)
	dl.Finalize()

	if len(dl.VtxBuffer) != 12 {
		t.Errorf("expected 4 vertices per glyph, got %d total", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 18 {
		t.Errorf("expected 6 indices per glyph, got %d total", len(dl.IdxBuffer))
	}

	// Glyph cells advance by the scaled character width.
	if x := dl.VtxBuffer[4].Pos[0]; x != 8 {
		t.Errorf("second glyph starts at x=%v, want 8", x)
	}
}
