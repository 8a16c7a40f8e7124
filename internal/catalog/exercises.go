package catalog

// Exercise id constants for movements referenced by the ratio tables, slot
// defaults, and safety swaps. The ids match the fixtures seeded into the
// database so generated routines stay joinable with stored history.
const (
	ExerciseBarbellSquat      = 1
	ExerciseBenchPress        = 2
	ExerciseDeadlift          = 3
	ExerciseOverheadPress     = 4
	ExerciseLegPress          = 5
	ExerciseGobletSquat       = 6
	ExerciseRomanianDeadlift  = 7
	ExerciseBarbellRow        = 8
	ExerciseLatPulldown       = 9
	ExercisePullUp            = 10
	ExerciseDumbbellBench     = 11
	ExerciseInclineDumbbell   = 12
	ExerciseDumbbellShoulder  = 13
	ExerciseLateralRaise      = 14
	ExerciseCableFly          = 15
	ExerciseTricepsPushdown   = 16
	ExerciseBicepsCurl        = 17
	ExerciseSeatedCableRow    = 18
	ExerciseDumbbellRow       = 19
	ExerciseLegExtension      = 20
	ExerciseLegCurl           = 21
	ExerciseCalfRaise         = 22
	ExerciseHipThrust         = 23
	ExerciseLunge             = 24
	ExercisePlank             = 25
	ExerciseSidePlank         = 26
	ExerciseCrunch            = 27
	ExerciseHangingLegRaise   = 28
	ExercisePushUp            = 29
	ExerciseDip               = 30
	ExerciseFacePull          = 31
	ExerciseBoxJump           = 32
	ExerciseBurpee            = 33
	ExerciseJumpSquat         = 34
	ExerciseCatCow            = 35
	ExerciseWorldsGreatest    = 36
	ExerciseHipFlexorStretch  = 37
	ExerciseThoracicRotation  = 38
	ExerciseBirdDog           = 39
	ExerciseDeadBug           = 40
	ExerciseGluteBridge       = 41
	ExerciseKettlebellSwing   = 42
	ExerciseFarmersCarry      = 43
	ExerciseMountainClimber   = 44
	ExerciseRussianTwist      = 45
	ExerciseDumbbellFrontSqt  = 46
	ExerciseChestPressMachine = 47
	ExerciseHackSquat         = 48
)

//nolint:funlen // flat reference table, one entry per movement.
func builtinExercises() []Exercise {
	return []Exercise{
		{ID: ExerciseBarbellSquat, Name: "Barbell Squat", BodyPart: BodyPartLegs, Equipment: EquipmentBarbell,
			PrimaryMuscles:      []MuscleGroup{Quads, Glutes},
			SecondaryMuscles:    []MuscleGroup{Hamstrings, LowerBack},
			DescriptionMarkdown: "# Barbell Squat\n\nBar on the upper back, sit between the hips, drive up through mid-foot."},
		{ID: ExerciseBenchPress, Name: "Bench Press", BodyPart: BodyPartChest, Equipment: EquipmentBarbell,
			PrimaryMuscles:      []MuscleGroup{Chest},
			SecondaryMuscles:    []MuscleGroup{Triceps, Shoulders},
			DescriptionMarkdown: "# Bench Press\n\nLower the bar to mid-chest with the shoulder blades pinned, press to lockout."},
		{ID: ExerciseDeadlift, Name: "Deadlift", BodyPart: BodyPartBack, Equipment: EquipmentBarbell,
			PrimaryMuscles:      []MuscleGroup{Hamstrings, Glutes, LowerBack},
			SecondaryMuscles:    []MuscleGroup{Traps, Forearms, Quads},
			DescriptionMarkdown: "# Deadlift\n\nHinge at the hips, keep the bar against the legs, stand tall."},
		{ID: ExerciseOverheadPress, Name: "Overhead Press", BodyPart: BodyPartShoulders, Equipment: EquipmentBarbell,
			PrimaryMuscles:      []MuscleGroup{Shoulders},
			SecondaryMuscles:    []MuscleGroup{Triceps, UpperBack},
			DescriptionMarkdown: "# Overhead Press\n\nPress the bar from the clavicles to overhead lockout without leg drive."},
		{ID: ExerciseLegPress, Name: "Leg Press", BodyPart: BodyPartLegs, Equipment: EquipmentMachine,
			PrimaryMuscles:      []MuscleGroup{Quads, Glutes},
			SecondaryMuscles:    []MuscleGroup{Hamstrings},
			DescriptionMarkdown: "# Leg Press\n\nFeet shoulder width on the sled, lower under control, press without locking hard."},
		{ID: ExerciseGobletSquat, Name: "Goblet Squat", BodyPart: BodyPartLegs, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Quads, Glutes},
			SecondaryMuscles:    []MuscleGroup{Abs},
			DescriptionMarkdown: "# Goblet Squat\n\nHold a dumbbell at the chest, squat between the heels, keep the torso tall."},
		{ID: ExerciseRomanianDeadlift, Name: "Romanian Deadlift", BodyPart: BodyPartLegs, Equipment: EquipmentBarbell,
			PrimaryMuscles:      []MuscleGroup{Hamstrings, Glutes},
			SecondaryMuscles:    []MuscleGroup{LowerBack},
			DescriptionMarkdown: "# Romanian Deadlift\n\nSoft knees, push the hips back until the hamstrings load, return."},
		{ID: ExerciseBarbellRow, Name: "Barbell Row", BodyPart: BodyPartBack, Equipment: EquipmentBarbell,
			PrimaryMuscles:      []MuscleGroup{Lats, UpperBack},
			SecondaryMuscles:    []MuscleGroup{Biceps, LowerBack},
			DescriptionMarkdown: "# Barbell Row\n\nHinge to roughly 45 degrees, pull the bar to the lower ribs."},
		{ID: ExerciseLatPulldown, Name: "Lat Pulldown", BodyPart: BodyPartBack, Equipment: EquipmentCable,
			PrimaryMuscles:      []MuscleGroup{Lats},
			SecondaryMuscles:    []MuscleGroup{Biceps, UpperBack},
			DescriptionMarkdown: "# Lat Pulldown\n\nPull the bar to the collarbone while keeping the chest up."},
		{ID: ExercisePullUp, Name: "Pull-Up", BodyPart: BodyPartBack, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Lats},
			SecondaryMuscles:    []MuscleGroup{Biceps, UpperBack, Abs},
			DescriptionMarkdown: "# Pull-Up\n\nDead hang to chin over bar, control the descent."},
		{ID: ExerciseDumbbellBench, Name: "Dumbbell Bench Press", BodyPart: BodyPartChest, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Chest},
			SecondaryMuscles:    []MuscleGroup{Triceps, Shoulders},
			DescriptionMarkdown: "# Dumbbell Bench Press\n\nPress two dumbbells from chest level to lockout over the shoulders."},
		{ID: ExerciseInclineDumbbell, Name: "Incline Dumbbell Press", BodyPart: BodyPartChest, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Chest, Shoulders},
			SecondaryMuscles:    []MuscleGroup{Triceps},
			DescriptionMarkdown: "# Incline Dumbbell Press\n\nBench at 30 degrees, press towards the upper chest line."},
		{ID: ExerciseDumbbellShoulder, Name: "Dumbbell Shoulder Press", BodyPart: BodyPartShoulders, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Shoulders},
			SecondaryMuscles:    []MuscleGroup{Triceps},
			DescriptionMarkdown: "# Dumbbell Shoulder Press\n\nSeated or standing, press the dumbbells overhead without flaring the ribs."},
		{ID: ExerciseLateralRaise, Name: "Lateral Raise", BodyPart: BodyPartShoulders, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Shoulders},
			DescriptionMarkdown: "# Lateral Raise\n\nRaise the dumbbells out to shoulder height with a slight elbow bend."},
		{ID: ExerciseCableFly, Name: "Cable Fly", BodyPart: BodyPartChest, Equipment: EquipmentCable,
			PrimaryMuscles:      []MuscleGroup{Chest},
			SecondaryMuscles:    []MuscleGroup{Shoulders},
			DescriptionMarkdown: "# Cable Fly\n\nArc the handles together in front of the chest with fixed elbows."},
		{ID: ExerciseTricepsPushdown, Name: "Triceps Pushdown", BodyPart: BodyPartArms, Equipment: EquipmentCable,
			PrimaryMuscles:      []MuscleGroup{Triceps},
			DescriptionMarkdown: "# Triceps Pushdown\n\nElbows pinned, extend the cable attachment to full lockout."},
		{ID: ExerciseBicepsCurl, Name: "Biceps Curl", BodyPart: BodyPartArms, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Biceps},
			SecondaryMuscles:    []MuscleGroup{Forearms},
			DescriptionMarkdown: "# Biceps Curl\n\nCurl without swinging, full stretch at the bottom."},
		{ID: ExerciseSeatedCableRow, Name: "Seated Cable Row", BodyPart: BodyPartBack, Equipment: EquipmentCable,
			PrimaryMuscles:      []MuscleGroup{UpperBack, Lats},
			SecondaryMuscles:    []MuscleGroup{Biceps},
			DescriptionMarkdown: "# Seated Cable Row\n\nPull the handle to the navel, squeeze the shoulder blades."},
		{ID: ExerciseDumbbellRow, Name: "Dumbbell Row", BodyPart: BodyPartBack, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Lats, UpperBack},
			SecondaryMuscles:    []MuscleGroup{Biceps},
			DescriptionMarkdown: "# Dumbbell Row\n\nOne hand braced, row the dumbbell to the hip."},
		{ID: ExerciseLegExtension, Name: "Leg Extension", BodyPart: BodyPartLegs, Equipment: EquipmentMachine,
			PrimaryMuscles:      []MuscleGroup{Quads},
			DescriptionMarkdown: "# Leg Extension\n\nExtend to a full squeeze, lower under control."},
		{ID: ExerciseLegCurl, Name: "Leg Curl", BodyPart: BodyPartLegs, Equipment: EquipmentMachine,
			PrimaryMuscles:      []MuscleGroup{Hamstrings},
			DescriptionMarkdown: "# Leg Curl\n\nCurl the pad to the glutes without lifting the hips."},
		{ID: ExerciseCalfRaise, Name: "Calf Raise", BodyPart: BodyPartLegs, Equipment: EquipmentMachine,
			PrimaryMuscles:      []MuscleGroup{Calves},
			DescriptionMarkdown: "# Calf Raise\n\nFull stretch at the bottom, pause at the top."},
		{ID: ExerciseHipThrust, Name: "Hip Thrust", BodyPart: BodyPartLegs, Equipment: EquipmentBarbell,
			PrimaryMuscles:      []MuscleGroup{Glutes},
			SecondaryMuscles:    []MuscleGroup{Hamstrings},
			DescriptionMarkdown: "# Hip Thrust\n\nShoulders on a bench, drive the bar up with the hips to full extension."},
		{ID: ExerciseLunge, Name: "Lunge", BodyPart: BodyPartLegs, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Quads, Glutes},
			SecondaryMuscles:    []MuscleGroup{Hamstrings},
			DescriptionMarkdown: "# Lunge\n\nStep forward, lower the back knee towards the floor, push back up."},
		{ID: ExercisePlank, Name: "Plank", BodyPart: BodyPartCore, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Abs},
			SecondaryMuscles:    []MuscleGroup{Obliques, LowerBack},
			DescriptionMarkdown: "# Plank\n\nForearms down, body in one line, brace without holding breath.",
			Isometric:           true},
		{ID: ExerciseSidePlank, Name: "Side Plank", BodyPart: BodyPartCore, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Obliques},
			SecondaryMuscles:    []MuscleGroup{Abs},
			DescriptionMarkdown: "# Side Plank\n\nStacked feet, hips lifted, hold the line.",
			Isometric:           true},
		{ID: ExerciseCrunch, Name: "Crunch", BodyPart: BodyPartCore, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Abs},
			DescriptionMarkdown: "# Crunch\n\nCurl the ribs towards the pelvis, no neck pulling."},
		{ID: ExerciseHangingLegRaise, Name: "Hanging Leg Raise", BodyPart: BodyPartCore, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Abs, HipFlexors},
			DescriptionMarkdown: "# Hanging Leg Raise\n\nHang from a bar, raise straight legs to parallel or above."},
		{ID: ExercisePushUp, Name: "Push-Up", BodyPart: BodyPartChest, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Chest},
			SecondaryMuscles:    []MuscleGroup{Triceps, Shoulders, Abs},
			DescriptionMarkdown: "# Push-Up\n\nRigid plank from hands, chest to the floor and back."},
		{ID: ExerciseDip, Name: "Dip", BodyPart: BodyPartChest, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Chest, Triceps},
			SecondaryMuscles:    []MuscleGroup{Shoulders},
			DescriptionMarkdown: "# Dip\n\nLower between parallel bars until the shoulders dip below the elbows."},
		{ID: ExerciseFacePull, Name: "Face Pull", BodyPart: BodyPartShoulders, Equipment: EquipmentCable,
			PrimaryMuscles:      []MuscleGroup{UpperBack, Shoulders},
			DescriptionMarkdown: "# Face Pull\n\nPull the rope towards the face with high elbows."},
		{ID: ExerciseBoxJump, Name: "Box Jump", BodyPart: BodyPartLegs, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Quads, Glutes},
			SecondaryMuscles:    []MuscleGroup{Calves},
			DescriptionMarkdown: "# Box Jump\n\nJump onto the box, step down, reset between reps.",
			Plyometric:          true},
		{ID: ExerciseBurpee, Name: "Burpee", BodyPart: BodyPartFullBody, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Quads, Chest},
			SecondaryMuscles:    []MuscleGroup{Abs, Shoulders},
			DescriptionMarkdown: "# Burpee\n\nSquat, kick back to a push-up, return, jump.",
			Plyometric:          true},
		{ID: ExerciseJumpSquat, Name: "Jump Squat", BodyPart: BodyPartLegs, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Quads, Glutes},
			SecondaryMuscles:    []MuscleGroup{Calves},
			DescriptionMarkdown: "# Jump Squat\n\nQuarter squat into a vertical jump, land soft.",
			Plyometric:          true},
		{ID: ExerciseCatCow, Name: "Cat-Cow", BodyPart: BodyPartMobility, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{LowerBack},
			DescriptionMarkdown: "# Cat-Cow\n\nOn all fours, alternate spinal flexion and extension slowly."},
		{ID: ExerciseWorldsGreatest, Name: "World's Greatest Stretch", BodyPart: BodyPartMobility, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{HipFlexors},
			SecondaryMuscles:    []MuscleGroup{Hamstrings},
			DescriptionMarkdown: "# World's Greatest Stretch\n\nLunge, elbow to instep, rotate towards the front leg."},
		{ID: ExerciseHipFlexorStretch, Name: "Hip Flexor Stretch", BodyPart: BodyPartMobility, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{HipFlexors},
			DescriptionMarkdown: "# Hip Flexor Stretch\n\nHalf-kneeling, tuck the pelvis, shift forward gently.",
			Isometric:           true},
		{ID: ExerciseThoracicRotation, Name: "Thoracic Rotation", BodyPart: BodyPartMobility, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{UpperBack},
			DescriptionMarkdown: "# Thoracic Rotation\n\nSide-lying or quadruped, rotate the upper spine open."},
		{ID: ExerciseBirdDog, Name: "Bird Dog", BodyPart: BodyPartCore, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{LowerBack, Abs},
			DescriptionMarkdown: "# Bird Dog\n\nExtend opposite arm and leg without tilting the hips."},
		{ID: ExerciseDeadBug, Name: "Dead Bug", BodyPart: BodyPartCore, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Abs},
			DescriptionMarkdown: "# Dead Bug\n\nOn the back, lower opposite arm and leg keeping the spine flat."},
		{ID: ExerciseGluteBridge, Name: "Glute Bridge", BodyPart: BodyPartLegs, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Glutes},
			SecondaryMuscles:    []MuscleGroup{Hamstrings},
			DescriptionMarkdown: "# Glute Bridge\n\nHeels close, drive the hips up, squeeze at the top."},
		{ID: ExerciseKettlebellSwing, Name: "Kettlebell Swing", BodyPart: BodyPartFullBody, Equipment: EquipmentKettlebell,
			PrimaryMuscles:      []MuscleGroup{Glutes, Hamstrings},
			SecondaryMuscles:    []MuscleGroup{LowerBack, Shoulders},
			DescriptionMarkdown: "# Kettlebell Swing\n\nHinge and snap the hips, the bell floats to chest height."},
		{ID: ExerciseFarmersCarry, Name: "Farmer's Carry", BodyPart: BodyPartFullBody, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Forearms, Traps},
			SecondaryMuscles:    []MuscleGroup{Abs},
			DescriptionMarkdown: "# Farmer's Carry\n\nHeavy dumbbells at the sides, walk tall."},
		{ID: ExerciseMountainClimber, Name: "Mountain Climber", BodyPart: BodyPartCore, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Abs, HipFlexors},
			SecondaryMuscles:    []MuscleGroup{Shoulders},
			DescriptionMarkdown: "# Mountain Climber\n\nPlank position, drive the knees alternately to the chest."},
		{ID: ExerciseRussianTwist, Name: "Russian Twist", BodyPart: BodyPartCore, Equipment: EquipmentBodyweight,
			PrimaryMuscles:      []MuscleGroup{Obliques},
			SecondaryMuscles:    []MuscleGroup{Abs},
			DescriptionMarkdown: "# Russian Twist\n\nSeated lean-back, rotate the torso side to side."},
		{ID: ExerciseDumbbellFrontSqt, Name: "Dumbbell Front Squat", BodyPart: BodyPartLegs, Equipment: EquipmentDumbbell,
			PrimaryMuscles:      []MuscleGroup{Quads, Glutes},
			SecondaryMuscles:    []MuscleGroup{Abs},
			DescriptionMarkdown: "# Dumbbell Front Squat\n\nDumbbells racked at the shoulders, squat upright."},
		{ID: ExerciseChestPressMachine, Name: "Chest Press Machine", BodyPart: BodyPartChest, Equipment: EquipmentMachine,
			PrimaryMuscles:      []MuscleGroup{Chest},
			SecondaryMuscles:    []MuscleGroup{Triceps},
			DescriptionMarkdown: "# Chest Press Machine\n\nAdjust the seat so the handles sit at mid-chest, press smoothly."},
		{ID: ExerciseHackSquat, Name: "Hack Squat", BodyPart: BodyPartLegs, Equipment: EquipmentMachine,
			PrimaryMuscles:      []MuscleGroup{Quads},
			SecondaryMuscles:    []MuscleGroup{Glutes},
			DescriptionMarkdown: "# Hack Squat\n\nBack flat on the pad, lower deep, drive through the whole foot."},
	}
}

// Default returns the built-in catalog. The same data is seeded into the
// database fixtures so storage and in-memory callers agree on ids.
func Default() Catalog {
	return New(builtinExercises())
}
