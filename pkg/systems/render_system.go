package systems

import (
	"image"
	"image/draw"
	"log"

	"github.com/decker502/voxelgrid/pkg/assets"
	"github.com/decker502/voxelgrid/pkg/components"
	"github.com/decker502/voxelgrid/pkg/config"
	"github.com/decker502/voxelgrid/pkg/ecs"
	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nfnt/resize"
)

// AssetResolver 根据句柄解析网格和材质
// game.ResourceManager 实现了该接口
type AssetResolver interface {
	GetMesh(h assets.Handle[*fauxgl.Mesh]) *fauxgl.Mesh
	GetMaterial(h assets.Handle[assets.Material]) (assets.Material, bool)
}

// 光照参数
var (
	lightDirection = fauxgl.V(0.3, 1, -0.5).Normalize() // 指向光源
	ambientColor   = fauxgl.Gray(0.35)
	diffuseColor   = fauxgl.Gray(0.75)
	specularColor  = fauxgl.Gray(0.2)
)

// worldMesh 缓存的世界空间网格
// 方块是静态的，只有网格句柄或位置变化时才需要重新变换
type worldMesh struct {
	source      assets.Handle[*fauxgl.Mesh]
	translation mgl64.Vec3
	mesh        *fauxgl.Mesh
}

// RenderSystem 使用 fauxgl 软件光栅化渲染三维场景
//
// 渲染流程：
//   - 以 Supersample 倍分辨率光栅化所有可见的网格实体（Phong 着色）
//   - 使用 nfnt/resize 双线性缩放回逻辑分辨率
//   - 上传到 ebiten.Image 并绘制到屏幕
//
// 视角来自唯一的 Camera3DComponent + TransformComponent 实体；
// 摄像机不唯一时只绘制天空背景。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	assets        AssetResolver
	supersample   int
	background    fauxgl.Color

	context    *fauxgl.Context
	meshCache  map[ecs.EntityID]*worldMesh
	pixels     *image.RGBA
	canvas     *ebiten.Image
	loggedSize bool
}

// NewRenderSystem 创建渲染系统
// supersample 小于 1 时按 1 处理（不超采样）
func NewRenderSystem(em *ecs.EntityManager, resolver AssetResolver, supersample int) *RenderSystem {
	if supersample < 1 {
		supersample = 1
	}
	return &RenderSystem{
		entityManager: em,
		assets:        resolver,
		supersample:   supersample,
		background:    fauxgl.HexColor(config.SkyColor),
		meshCache:     make(map[ecs.EntityID]*worldMesh),
	}
}

// RenderFrame 渲染一帧并返回 width x height 的图像
// 视口为空或摄像机不唯一时返回 false
func (s *RenderSystem) RenderFrame(width, height int) (image.Image, bool) {
	if width <= 0 || height <= 0 {
		return nil, false
	}

	cameras := ecs.GetEntitiesWith2[
		*components.Camera3DComponent,
		*components.TransformComponent,
	](s.entityManager)
	if len(cameras) != 1 {
		return nil, false
	}
	cam, _ := ecs.GetComponent[*components.Camera3DComponent](s.entityManager, cameras[0])
	camTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, cameras[0])

	ctx := s.ensureContext(width*s.supersample, height*s.supersample)
	ctx.ClearColorBufferWith(s.background)
	ctx.ClearDepthBuffer()

	eye := toFauxVector(camTransform.Translation)
	center := toFauxVector(camTransform.Translation.Add(CameraForward(camTransform.Yaw, camTransform.Pitch)))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, fauxgl.V(0, 1, 0)).Perspective(cam.FovY, aspect, cam.Near, cam.Far)

	drawable := ecs.GetEntitiesWith3[
		*components.MeshComponent,
		*components.MaterialComponent,
		*components.TransformComponent,
	](s.entityManager)
	s.pruneCache(drawable)

	for _, id := range drawable {
		if visibility, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id); ok && !visibility.Visible {
			continue
		}

		mesh := s.worldMeshFor(id)
		if mesh == nil {
			continue
		}
		materialComp, _ := ecs.GetComponent[*components.MaterialComponent](s.entityManager, id)
		material, ok := s.assets.GetMaterial(materialComp.Material)
		if !ok {
			continue
		}

		shader := fauxgl.NewPhongShader(matrix, lightDirection, eye)
		shader.ObjectColor = material.BaseColor
		shader.AmbientColor = ambientColor
		shader.DiffuseColor = diffuseColor
		shader.SpecularColor = specularColor
		shader.SpecularPower = material.SpecularPower
		ctx.Shader = shader
		ctx.DrawMesh(mesh)
	}

	frame := ctx.Image()
	if s.supersample > 1 {
		frame = resize.Resize(uint(width), uint(height), frame, resize.Bilinear)
	}
	return frame, true
}

// Draw 渲染场景并绘制到 screen
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	frame, ok := s.RenderFrame(width, height)
	if !ok {
		screen.Fill(s.background.NRGBA())
		return
	}

	if s.pixels == nil || s.pixels.Bounds().Dx() != width || s.pixels.Bounds().Dy() != height {
		s.pixels = image.NewRGBA(image.Rect(0, 0, width, height))
		if s.canvas != nil {
			s.canvas.Deallocate()
		}
		s.canvas = ebiten.NewImage(width, height)
	}
	draw.Draw(s.pixels, s.pixels.Bounds(), frame, frame.Bounds().Min, draw.Src)
	s.canvas.WritePixels(s.pixels.Pix)
	screen.DrawImage(s.canvas, nil)
}

// ensureContext 按需（尺寸变化时）重新创建光栅化上下文
func (s *RenderSystem) ensureContext(width, height int) *fauxgl.Context {
	if s.context != nil && s.context.Width == width && s.context.Height == height {
		return s.context
	}
	s.context = fauxgl.NewContext(width, height)
	if !s.loggedSize {
		log.Printf("[RenderSystem] 光栅化分辨率 %dx%d (supersample=%d)", width, height, s.supersample)
		s.loggedSize = true
	}
	return s.context
}

// worldMeshFor 返回实体在世界空间中的网格，必要时重新生成缓存
func (s *RenderSystem) worldMeshFor(id ecs.EntityID) *fauxgl.Mesh {
	meshComp, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
	transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

	if cached, ok := s.meshCache[id]; ok &&
		cached.source == meshComp.Mesh && cached.translation == transform.Translation {
		return cached.mesh
	}

	source := s.assets.GetMesh(meshComp.Mesh)
	if source == nil {
		delete(s.meshCache, id)
		return nil
	}

	mesh := source.Copy()
	mesh.Transform(fauxgl.Translate(toFauxVector(transform.Translation)))
	s.meshCache[id] = &worldMesh{
		source:      meshComp.Mesh,
		translation: transform.Translation,
		mesh:        mesh,
	}
	return mesh
}

// pruneCache 丢弃已销毁或不再可绘制的实体的缓存
func (s *RenderSystem) pruneCache(drawable []ecs.EntityID) {
	if len(s.meshCache) <= len(drawable) {
		return
	}
	alive := make(map[ecs.EntityID]struct{}, len(drawable))
	for _, id := range drawable {
		alive[id] = struct{}{}
	}
	for id := range s.meshCache {
		if _, ok := alive[id]; !ok {
			delete(s.meshCache, id)
		}
	}
}

func toFauxVector(v mgl64.Vec3) fauxgl.Vector {
	return fauxgl.V(v.X(), v.Y(), v.Z())
}
