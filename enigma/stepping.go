package enigma

// step moves the rotors for one keystroke, before the letter is encrypted.
//
// Every turnover is sampled before any rotor moves; nothing is re-checked
// after a partial advance.  With the rotors ordered left to right:
//
//   - the rightmost rotor always advances;
//   - any other rotor advances when its right neighbour is at turnover;
//   - a rotor that is itself at turnover and has a left neighbour advances
//     along with that neighbour (the double step);
//   - the leftmost rotor has nothing to carry into, so it only moves on a
//     carry from its right.
//
// No rotor advances more than once per keystroke.  For three rotors this is
// the historical rule: a middle rotor at turnover steps itself and the left
// rotor, otherwise a right rotor at turnover steps the middle one.  Other
// rotor counts follow the same pawl logic but have no historical machine to
// check against.
func (m *Machine) step() {
	n := len(m.rotors)
	for i, r := range m.rotors {
		m.notched[i] = r.TurnoverReached()
	}
	for i := range m.rotors {
		switch {
		case i == n-1:
			m.advance[i] = true
		case m.notched[i+1]:
			m.advance[i] = true
		case m.notched[i] && i > 0:
			m.advance[i] = true
		default:
			m.advance[i] = false
		}
	}
	for i, r := range m.rotors {
		if m.advance[i] {
			r.Advance()
		}
	}
}
