package sim

// Collision cause strings used in match-end reasons.
const (
	reasonSelf     = "self collision"
	reasonHeadOn   = "head-on collision"
	reasonOpponent = "ran into opponent"
	reasonBothDead = "both snakes died"
)

// resolve runs the per-tick rule engine in its fixed order: food pickups,
// self-collisions, inter-snake collisions, termination. Pickup effects are
// never rolled back, even when the same tick ends the match.
func (m *Match) resolve() []Event {
	var events []Event
	events = append(events, m.resolveFood()...)

	causes := make(map[PlayerID]string)
	m.resolveSelf(causes)
	m.resolveVersus(causes)
	events = append(events, m.resolveEnd(causes)...)
	return events
}

// resolveFood awards every snake whose head reaches the food position
// captured at phase start, then respawns the food once. Hard mode raises the
// shared speed per pickup, capped.
func (m *Match) resolveFood() []Event {
	var events []Event
	captured := m.food
	eaten := false
	for _, s := range m.snakes {
		if !s.Alive {
			continue
		}
		if Dist(s.Head, captured) >= m.tuning.Food.PickupRadius {
			continue
		}
		s.Score += m.tuning.Food.Reward
		s.Chain.Grow(m.tuning.Food.Growth)
		events = append(events, Event{
			Kind:        EventFoodEaten,
			Snake:       s.ID,
			ScoreDelta:  m.tuning.Food.Reward,
			LengthDelta: m.tuning.Food.Growth,
		})
		if m.difficulty == DifficultyHard && m.speed < m.motion.SpeedCap {
			m.speed += m.motion.SpeedIncrement
			if m.speed > m.motion.SpeedCap {
				m.speed = m.motion.SpeedCap
			}
			events = append(events, Event{Kind: EventSpeedChanged, Speed: m.speed})
		}
		eaten = true
	}
	if eaten {
		m.food = m.spawner.Place(m.plane, m.snakes)
		events = append(events, Event{Kind: EventFoodMoved, Pos: m.food})
	}
	return events
}

// resolveSelf kills any snake whose head touches its own body. The first few
// segments behind the head sit within one spacing unit of it by
// construction, so they are exempt from the test.
func (m *Match) resolveSelf(causes map[PlayerID]string) {
	for _, s := range m.snakes {
		if !s.Alive {
			continue
		}
		for i, seg := range s.Segments() {
			if i < m.tuning.Collision.SelfExempt {
				continue
			}
			if Dist(s.Head, seg) < m.tuning.Collision.SelfRadius {
				s.Alive = false
				causes[s.ID] = reasonSelf
				break
			}
		}
	}
}

// resolveVersus applies the duel rules when both snakes survived the self
// check: a head-on kill takes both, otherwise a head touching the opponent's
// body kills only the head's owner. Both snakes can ram each other's bodies
// in the same tick, which also ends as a tie.
func (m *Match) resolveVersus(causes map[PlayerID]string) {
	if m.mode != ModeDuo || len(m.snakes) != 2 {
		return
	}
	a, b := m.snakes[0], m.snakes[1]
	if !a.Alive || !b.Alive {
		return
	}

	if Dist(a.Head, b.Head) < m.tuning.Collision.HeadRadius {
		a.Alive = false
		b.Alive = false
		causes[a.ID] = reasonHeadOn
		causes[b.ID] = reasonHeadOn
		return
	}

	if m.headHitsBody(a, b) {
		a.Alive = false
		causes[a.ID] = reasonOpponent
	}
	if m.headHitsBody(b, a) {
		b.Alive = false
		causes[b.ID] = reasonOpponent
	}
}

// headHitsBody reports whether attacker's head is within the body radius of
// any of defender's segments. Plain Euclidean distance: contacts across the
// wrap seam do not register.
func (m *Match) headHitsBody(attacker, defender *Snake) bool {
	for _, seg := range defender.Segments() {
		if Dist(attacker.Head, seg) < m.tuning.Collision.BodyRadius {
			return true
		}
	}
	return false
}

// resolveEnd transitions the match to ENDED when this tick recorded a death
// and fills in winner and reason.
func (m *Match) resolveEnd(causes map[PlayerID]string) []Event {
	if len(causes) == 0 {
		return nil
	}
	m.state = StateEnded

	if m.mode == ModeSingle {
		m.winner = WinnerNone
		m.reason = causes[PlayerOne]
	} else {
		a, b := m.snakes[0], m.snakes[1]
		switch {
		case !a.Alive && !b.Alive:
			m.winner = WinnerTie
			if causes[a.ID] == reasonHeadOn {
				m.reason = reasonHeadOn
			} else {
				m.reason = reasonBothDead
			}
		case !a.Alive:
			m.winner = WinnerPlayerTwo
			m.reason = causes[a.ID]
		default:
			m.winner = WinnerPlayerOne
			m.reason = causes[b.ID]
		}
	}

	return []Event{{Kind: EventMatchEnded, Winner: m.winner, Reason: m.reason}}
}
