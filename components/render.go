package components

import "github.com/go-gl/mathgl/mgl32"

// SpriteSheet is one entry of the SpriteList singleton.
type SpriteSheet struct {
	Name    string
	Sprites int
}

// SpriteList is a singleton listing the sprite sheets SpriteRender can use.
type SpriteList []SpriteSheet

// Find returns the sheet with the given name.
func (l SpriteList) Find(name string) (SpriteSheet, bool) {
	for _, sheet := range l {
		if sheet.Name == name {
			return sheet, true
		}
	}
	return SpriteSheet{}, false
}

// SpriteRender draws one sprite of a sprite sheet.
type SpriteRender struct {
	Sheet  string
	Sprite int
}

// Texture draws a whole texture.
type Texture struct {
	Name string
}

// TextureList is a singleton listing the textures Texture can use.
type TextureList []string

// Camera views the world. Zoom scales the visible area.
type Camera struct {
	Zoom float32 `inspect:"speed=0.01,null_to=1"`
}

// View maps world positions to screen pixels for a camera placed by
// transform. The camera position lands on the centre of the screen.
func (c Camera) View(transform Transform, screen mgl32.Vec2) mgl32.Mat4 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	at := transform.Translation
	return mgl32.Translate3D(screen.X()/2, screen.Y()/2, 0).
		Mul4(mgl32.Scale3D(zoom, zoom, 1)).
		Mul4(mgl32.HomogRotate3DZ(-mgl32.DegToRad(transform.Rotation))).
		Mul4(mgl32.Translate3D(-at.X(), -at.Y(), 0))
}

// WorldFromScreen maps a pixel back into the world, keeping z.
func (c Camera) WorldFromScreen(p mgl32.Vec3, transform Transform, screen mgl32.Vec2) mgl32.Vec3 {
	world := c.View(transform, screen).Inv().Mul4x1(mgl32.Vec4{p.X(), p.Y(), 0, 1})
	return mgl32.Vec3{world.X(), world.Y(), p.Z()}
}
