package board

// Apply produces a new Position by applying m to a clone of pos, in a fixed order: detect
// en passant, resolve any capture, relocate the piece, promote, carry the rook on castling,
// set the moved flag, then reset the en-passant window and halfmove clock. It returns
// ok=false (a "reject") if the move cannot be applied -- source square empty, out-of-board
// coordinates, or similar malformed input. The search driver must skip rejected children;
// none of GenerateMoves' own output is ever rejected, since it only proposes moves from
// pieces it already found on the board.
func (pos *Position) Apply(m Move) (*Position, bool) {
	if !m.From.IsValid() || !m.To.IsValid() {
		return nil, false
	}

	next := pos.Clone()

	pi, ok := next.At(m.From)
	if !ok || !next.Pieces[pi].Alive {
		return nil, false
	}
	mover := &next.Pieces[pi]
	isPawn := mover.Kind == Pawn

	// (1) En-passant capture detection.
	isEnPassant := isPawn && m.From.Col != m.To.Col && next.IsEmpty(m.To) &&
		next.EnPassant.Set && next.EnPassant.Target == m.To

	isCapture := false
	if isEnPassant {
		ci, ok := next.At(next.EnPassant.Capture)
		if !ok || next.Pieces[ci].Kind != Pawn || next.Pieces[ci].Color == mover.Color {
			return nil, false
		}
		next.Pieces[ci].Alive = false
		next.clearSquare(next.EnPassant.Capture)
		isCapture = true
	} else if ti, occupied := next.At(m.To); occupied {
		// (2) Ordinary capture: mark the target dead and clear its square.
		if next.Pieces[ti].Color == mover.Color {
			return nil, false
		}
		next.Pieces[ti].Alive = false
		next.clearSquare(m.To)
		isCapture = true
	}

	// (3) Move the piece.
	next.clearSquare(m.From)
	mover.Square = m.To
	next.setSquare(m.To, pi)

	// (4) Promotion.
	if isPawn && (m.To.Row == 0 || m.To.Row == 7) {
		if m.Promotion.IsValid() {
			mover.Kind = m.Promotion
		} else {
			mover.Kind = Queen
		}
	}

	// (5) Castling rook transit.
	colDelta := m.To.Col - m.From.Col
	if mover.Kind == King && (colDelta == 2 || colDelta == -2) {
		homeRow := m.From.Row
		rookFrom, rookTo := 7, 5
		if colDelta < 0 {
			rookFrom, rookTo = 0, 3
		}
		if ri, ok := next.At(Square{Col: rookFrom, Row: homeRow}); ok {
			rook := &next.Pieces[ri]
			next.clearSquare(rook.Square)
			rook.Square = Square{Col: rookTo, Row: homeRow}
			next.setSquare(rook.Square, ri)
			rook.Moved = true
		}
	}

	// (6) Sticky moved flag.
	mover.Moved = true

	// (7) En-passant window update.
	next.EnPassant = EnPassantWindow{Target: NoSquare, Capture: NoSquare}
	rowDelta := m.To.Row - m.From.Row
	if isPawn && (rowDelta == 2 || rowDelta == -2) {
		next.EnPassant = EnPassantWindow{
			Target:  Square{Col: m.From.Col, Row: (m.From.Row + m.To.Row) / 2},
			Capture: m.To,
			Set:     true,
		}
	}

	// (8) Halfmove clock.
	if isPawn || isCapture {
		next.HalfMoves = 0
	} else {
		next.HalfMoves++
	}

	return next, true
}

func (p *Position) clearSquare(sq Square) {
	p.occupancy[sq.Row][sq.Col] = EmptySquare
}

func (p *Position) setSquare(sq Square, index int) {
	p.occupancy[sq.Row][sq.Col] = index
}
