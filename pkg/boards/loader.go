package boards

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"

	"kingdomino/internal/kingdom"
)

//go:embed data/*.json
var boardFiles embed.FS

// Registry holds all loaded sample boards.
var Registry = make(map[string]*Kingdom)

// LoadAll loads all embedded sample boards.
func LoadAll() error {
	entries, err := boardFiles.ReadDir("data")
	if err != nil {
		return fmt.Errorf("failed to read board directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		k, err := Load(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to load board %s: %w", entry.Name(), err)
		}

		Registry[k.ID] = k
	}

	return nil
}

// Load loads a single embedded board by filename.
func Load(filename string) (*Kingdom, error) {
	data, err := boardFiles.ReadFile(path.Join("data", filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	return LoadFromJSON(data)
}

// LoadFile loads a board from disk.
func LoadFile(filename string) (*Kingdom, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	return LoadFromJSON(data)
}

// LoadFromJSON loads a board from JSON bytes.
func LoadFromJSON(data []byte) (*Kingdom, error) {
	var raw RawBoard
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse board JSON: %w", err)
	}

	k, err := Build(&raw)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}
	return k, nil
}

// Build validates a raw board and converts it to a Kingdom.
func Build(raw *RawBoard) (*Kingdom, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	tiles := make([][]kingdom.Tile, len(raw.Tiles))
	for r, row := range raw.Tiles {
		tiles[r] = make([]kingdom.Tile, len(row))
		for c, rt := range row {
			if rt == nil {
				continue
			}
			terrain, err := kingdom.ParseTerrain(rt.Terrain)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			tiles[r][c] = kingdom.Tile{Terrain: terrain, Crowns: rt.Crowns}
		}
	}

	b, err := kingdom.NewBoard(tiles)
	if err != nil {
		return nil, err
	}

	k := &Kingdom{
		ID:     raw.ID,
		Name:   raw.Name,
		Board:  b,
		Castle: raw.Castle,
		Origin: raw.Origin,
		Size:   raw.Size,
	}
	if k.Size == 0 {
		k.Size = DefaultSize
	}

	// Castle and viewport are checked once the board dimensions are known.
	if !b.InBounds(k.Castle) {
		return nil, fmt.Errorf("%w: castle at %s on %dx%d board", kingdom.ErrOutOfRange, k.Castle, b.Rows, b.Cols)
	}
	far := kingdom.Position{Row: k.Origin.Row + k.Size - 1, Col: k.Origin.Col + k.Size - 1}
	if !b.InBounds(k.Origin) || !b.InBounds(far) {
		return nil, fmt.Errorf("%w: %dx%d viewport at %s on %dx%d board",
			kingdom.ErrOutOfRange, k.Size, k.Size, k.Origin, b.Rows, b.Cols)
	}

	return k, nil
}

// validate checks a raw board for errors.
func validate(raw *RawBoard) error {
	if raw.ID == "" {
		return fmt.Errorf("%w: board ID is required", kingdom.ErrInvalidBoard)
	}
	if raw.Name == "" {
		return fmt.Errorf("%w: board name is required", kingdom.ErrInvalidBoard)
	}
	if raw.Size < 0 {
		return fmt.Errorf("%w: size %d", kingdom.ErrInvalidViewport, raw.Size)
	}
	if len(raw.Tiles) == 0 || len(raw.Tiles[0]) == 0 {
		return fmt.Errorf("%w: no tiles", kingdom.ErrInvalidBoard)
	}
	width := len(raw.Tiles[0])
	for r, row := range raw.Tiles {
		if len(row) != width {
			return fmt.Errorf("%w: row %d width mismatch: expected %d, got %d", kingdom.ErrInvalidBoard, r, width, len(row))
		}
	}
	return nil
}

// Get retrieves a board from the registry by ID.
func Get(id string) *Kingdom {
	return Registry[id]
}

// List returns all registered boards sorted by ID.
func List() []BoardInfo {
	infos := make([]BoardInfo, 0, len(Registry))
	for _, k := range Registry {
		infos = append(infos, BoardInfo{
			ID:     k.ID,
			Name:   k.Name,
			Rows:   k.Board.Rows,
			Cols:   k.Board.Cols,
			Size:   k.Size,
			Placed: k.Board.PlacedCount(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Register adds a board to the registry.
func Register(k *Kingdom) {
	if k != nil && k.ID != "" {
		Registry[k.ID] = k
	}
}

// Marshal encodes the kingdom in the board file format.
func (k *Kingdom) Marshal() ([]byte, error) {
	return json.MarshalIndent(k.Raw(), "", "  ")
}
