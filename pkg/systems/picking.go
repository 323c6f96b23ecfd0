package systems

import (
	"errors"
	"math"

	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrEmptyViewport 视口宽或高不为正，无法反投影
	ErrEmptyViewport = errors.New("viewport has no area")

	// ErrDegenerateCamera 摄像机矩阵不可逆或反投影结果不是有限值
	ErrDegenerateCamera = errors.New("camera projection is not invertible")
)

// Ray 世界空间中的射线
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At 返回射线上参数 t 处的点
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// AABB 轴对齐包围盒
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBlockAABB 创建以 center 为中心、边长为 size 的立方体包围盒
func NewBlockAABB(center mgl64.Vec3, size float64) AABB {
	half := size / 2
	extent := mgl64.Vec3{half, half, half}
	return AABB{
		Min: center.Sub(extent),
		Max: center.Add(extent),
	}
}

// IntersectRayAABB 使用 slab 方法求射线与包围盒的交点参数
//
// 返回射线进入/离开包围盒时的参数 tEntry、tExit，以及是否相交。
// 相交条件为 tEntry <= tExit 且 tExit >= 0（包围盒不完全在射线起点后方）。
//
// 方向分量为 0 时除法得到 ±Inf，起点恰好落在 slab 边界上时得到 NaN；
// NaN 会经由内置 min/max 传播，任何与 NaN 的比较都为 false，
// 因此这类退化情况统一报告为不相交。
func IntersectRayAABB(ray Ray, box AABB) (tEntry, tExit float64, hit bool) {
	t1 := (box.Min.X() - ray.Origin.X()) / ray.Direction.X()
	t2 := (box.Max.X() - ray.Origin.X()) / ray.Direction.X()
	t3 := (box.Min.Y() - ray.Origin.Y()) / ray.Direction.Y()
	t4 := (box.Max.Y() - ray.Origin.Y()) / ray.Direction.Y()
	t5 := (box.Min.Z() - ray.Origin.Z()) / ray.Direction.Z()
	t6 := (box.Max.Z() - ray.Origin.Z()) / ray.Direction.Z()

	tEntry = max(min(t1, t2), min(t3, t4), min(t5, t6))
	tExit = min(max(t1, t2), max(t3, t4), max(t5, t6))

	hit = tEntry <= tExit && tExit >= 0
	return tEntry, tExit, hit
}

// CameraForward 返回给定偏航/俯仰角对应的单位朝向向量
// Yaw = 0、Pitch = 0 时朝向 -Z
func CameraForward(yaw, pitch float64) mgl64.Vec3 {
	cosPitch := math.Cos(pitch)
	return mgl64.Vec3{
		-math.Sin(yaw) * cosPitch,
		math.Sin(pitch),
		-math.Cos(yaw) * cosPitch,
	}
}

// CameraMatrices 构造摄像机的观察矩阵和透视投影矩阵
// 宽高比由视口尺寸决定
func CameraMatrices(cam *components.Camera3DComponent, transform *components.TransformComponent, width, height int) (view, projection mgl64.Mat4) {
	eye := transform.Translation
	center := eye.Add(CameraForward(transform.Yaw, transform.Pitch))
	view = mgl64.LookAtV(eye, center, mgl64.Vec3{0, 1, 0})

	aspect := float64(width) / float64(height)
	projection = mgl64.Perspective(mgl64.DegToRad(cam.FovY), aspect, cam.Near, cam.Far)
	return view, projection
}

// ViewportToWorld 将屏幕坐标（左上角为原点的逻辑像素）反投影为世界空间射线
//
// 射线起点位于近裁剪面上，方向指向远裁剪面上的对应点（已归一化）。
//
// 返回错误：
//   - ErrEmptyViewport: 视口宽或高不为正
//   - ErrDegenerateCamera: 摄像机参数非法、矩阵不可逆或结果含 NaN/Inf
func ViewportToWorld(cam *components.Camera3DComponent, transform *components.TransformComponent, width, height int, screenX, screenY float64) (Ray, error) {
	if width <= 0 || height <= 0 {
		return Ray{}, ErrEmptyViewport
	}
	if !(cam.FovY > 0 && cam.FovY < 180) || !(cam.Near > 0) || !(cam.Far > cam.Near) {
		return Ray{}, ErrDegenerateCamera
	}

	view, projection := CameraMatrices(cam, transform, width, height)

	// 屏幕 y 轴向下，OpenGL 窗口坐标 y 轴向上
	winX := screenX
	winY := float64(height) - screenY

	near, err := mgl64.UnProject(mgl64.Vec3{winX, winY, 0}, view, projection, 0, 0, width, height)
	if err != nil {
		return Ray{}, ErrDegenerateCamera
	}
	far, err := mgl64.UnProject(mgl64.Vec3{winX, winY, 1}, view, projection, 0, 0, width, height)
	if err != nil {
		return Ray{}, ErrDegenerateCamera
	}

	delta := far.Sub(near)
	length := delta.Len()
	if !isFiniteVec(near) || !isFinite(length) || length == 0 {
		return Ray{}, ErrDegenerateCamera
	}

	return Ray{Origin: near, Direction: delta.Mul(1 / length)}, nil
}

// PickOriginFunc 决定拾取射线穿过的屏幕点（逻辑像素，左上角为原点）
type PickOriginFunc func(window *components.WindowComponent) (x, y float64)

// ScreenCenter 以窗口中心（准星位置）作为拾取点
func ScreenCenter(window *components.WindowComponent) (float64, float64) {
	return float64(window.Width) / 2, float64(window.Height) / 2
}

// CursorPosition 以鼠标光标位置作为拾取点，光标被锁定时退化为窗口中心
func CursorPosition(window *components.WindowComponent) (float64, float64) {
	if window.CursorLocked {
		return ScreenCenter(window)
	}
	return window.CursorX, window.CursorY
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFiniteVec(v mgl64.Vec3) bool {
	return isFinite(v.X()) && isFinite(v.Y()) && isFinite(v.Z())
}
