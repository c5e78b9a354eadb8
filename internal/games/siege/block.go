package siege

// Block is a static, axis-aligned, destructible rectangle.
// Position is the top-left corner in world cells (+Y down).
type Block struct {
	X, Y, W, H float64
	Material   Material
	HP         float64 // Current hit points; non-increasing while alive
	MaxHP      float64 // Hit points at spawn
	Alive      bool
}

// NewBlock creates a live block of the given material at full hit points.
func NewBlock(x, y, w, h float64, m Material) Block {
	hp := m.Info().BaseHP
	return Block{X: x, Y: y, W: w, H: h, Material: m, HP: hp, MaxHP: hp, Alive: true}
}

// Right returns the x-coordinate of the right edge.
func (b *Block) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Block) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the x-coordinate of the block center.
func (b *Block) CenterX() float64 {
	return b.X + b.W/2
}

// Damage subtracts hit points and kills the block when they run out.
// Dead blocks ignore further damage. Returns true if this call destroyed
// the block.
func (b *Block) Damage(amount float64) bool {
	if !b.Alive || amount <= 0 {
		return false
	}
	b.HP -= amount
	if b.HP <= 0 {
		b.HP = 0
		b.Alive = false
		return true
	}
	return false
}
