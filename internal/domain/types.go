package domain

// Board holds current values and which cells are fixed givens.
// A zero value means the cell is still undetermined.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Clue is a cell whose digit has just been determined, either as an
// initial given or by deduction. Clues drive candidate elimination.
type Clue struct {
	Row   int
	Col   int
	Value uint8
}

// Puzzle is one entry of a batch: the raw text it was parsed from plus
// its position within the source.
type Puzzle struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Board Board  `json:"board"`
}
