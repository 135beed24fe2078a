package parameter

// Ambient Background Particles
const (
	// AmbientCount is the fixed population of decorative particles
	AmbientCount = 60

	// AmbientMaxSpeedX is the horizontal speed bound (units/tick), velocity in [-max, max)
	AmbientMaxSpeedX = 0.3

	// AmbientMaxSpeedY is the vertical speed bound (units/tick)
	AmbientMaxSpeedY = 0.2

	// AmbientRadiusMin/Max bound particle size
	AmbientRadiusMin = 2.0
	AmbientRadiusMax = 6.0

	// AmbientAlphaMin/Max bound particle opacity on the 0-255 scale
	AmbientAlphaMin = 50.0
	AmbientAlphaMax = 120.0
)

// Firework Bursts
const (
	// BurstFragments is the number of fragments created per burst
	BurstFragments = 100

	// FragmentSpeedMin/Max bound initial speed (units/tick)
	FragmentSpeedMin = 2.0
	FragmentSpeedMax = 8.0

	// FragmentLifeMin/Max bound lifetime in ticks, life in [min, max)
	FragmentLifeMin = 60
	FragmentLifeMax = 120

	// FragmentRadiusMin/Max bound fragment size
	FragmentRadiusMin = 2.0
	FragmentRadiusMax = 5.0

	// FragmentGravity is added to vertical velocity each tick
	FragmentGravity = 0.06

	// FragmentDrag multiplies both velocity components each tick
	FragmentDrag = 0.995
)

// Burst Counts
const (
	// AnswerBursts are spawned on a correct answer
	AnswerBursts = 3

	// PerfectEntryBursts are spawned once when a perfect result screen opens
	PerfectEntryBursts = 12

	// CelebrationBursts are spawned every CelebrationInterval ticks on a perfect result screen
	CelebrationBursts = 3
)
