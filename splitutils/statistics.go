package splitutils

type Statistics struct {
	SplitCount     int
	ActiveCells    int
	FinalizedCells int
}

func (s *Statistics) Clear() {
	s.SplitCount = 0
	s.ActiveCells = 0
	s.FinalizedCells = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.SplitCount += other.SplitCount
	s.ActiveCells += other.ActiveCells
	s.FinalizedCells += other.FinalizedCells
}
