package config

import "testing"

// TestPickConstants 锁定拾取参数，这些值直接决定哪些方块可以被准星选中
func TestPickConstants(t *testing.T) {
	if PickMaxDistance != 5.0 {
		t.Errorf("PickMaxDistance = %v, want 5.0", PickMaxDistance)
	}
	if PickBlockSize != 1.0 {
		t.Errorf("PickBlockSize = %v, want 1.0", PickBlockSize)
	}
	if BlockGridGap <= 0 || BlockGridGap >= DefaultBlockSize {
		t.Errorf("BlockGridGap = %v should be a small positive gap", BlockGridGap)
	}
}

// TestWindowLayout 验证逻辑屏幕尺寸合法且中心点落在像素范围内
func TestWindowLayout(t *testing.T) {
	if GameWindowWidth <= 0 || GameWindowHeight <= 0 {
		t.Fatalf("invalid window size %dx%d", GameWindowWidth, GameWindowHeight)
	}
	cx, cy := GameWindowWidth/2, GameWindowHeight/2
	if cx >= GameWindowWidth || cy >= GameWindowHeight {
		t.Errorf("screen center (%d, %d) outside %dx%d", cx, cy, GameWindowWidth, GameWindowHeight)
	}
	if CameraMaxPitchDegrees >= 90 {
		t.Errorf("CameraMaxPitchDegrees = %v must stay below 90", CameraMaxPitchDegrees)
	}
}
