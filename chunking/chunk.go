package chunking

// Chunk is a contiguous run of arrangement positions assigned to the same
// group, together with the tree vertex (if any) that is its parent outside
// the group.
type Chunk struct {
	Nodes     []int
	parent    int
	hasParent bool
}

// NodeList returns the vertices belonging to this chunk, in arrangement order.
func (c *Chunk) NodeList() []int { return c.Nodes }

// ParentNode returns the tree vertex that is this chunk's parent (the tree
// parent of the chunk's topmost vertex) and whether one exists — a chunk
// containing the tree root has none.
func (c *Chunk) ParentNode() (int, bool) { return c.parent, c.hasParent }

// Sequence is the ordered result of a chunking algorithm: chunk 0 is
// leftmost in the arrangement, chunk k-1 rightmost.
type Sequence struct {
	chunks      []Chunk
	nodeToChunk []int
}

// Chunks returns the chunk sequence, left to right.
func (s *Sequence) Chunks() []Chunk { return s.chunks }

// Len returns the number of chunks.
func (s *Sequence) Len() int { return len(s.chunks) }

// ChunkIndex returns the index of the chunk vertex u belongs to.
func (s *Sequence) ChunkIndex(u int) int { return s.nodeToChunk[u] }
