package knowledge

// builtinEntries returns a fresh copy of the compiled-in knowledge so
// reloads never mutate the source data.
func builtinEntries() []Entry {
	out := make([]Entry, len(builtin))
	copy(out, builtin)
	return out
}

var builtin = []Entry{
	{
		Pose: "child_pose",
		Alignment: []string{
			"Knees should be hip-width apart or wider",
			"Big toes touching behind you",
			"Sit back on your heels",
			"Forehead rests on the mat",
			"Arms can be extended forward or alongside body",
		},
		Contraindications: []string{
			"Knee injury",
			"Ankle injury",
			"Pregnancy (third trimester)",
		},
		Benefits: []string{
			"Calms the nervous system",
			"Stretches hips and thighs",
			"Relieves back tension",
		},
		Breathing:     "Breathe deeply into your back body",
		Modifications: "Place a pillow between thighs and calves if knees are sensitive",
	},
	{
		Pose: "cat_cow",
		Alignment: []string{
			"Start on hands and knees, wrists under shoulders, knees under hips",
			"Move with your breath",
			"Inhale: arch back, lift tailbone and head (cow)",
			"Exhale: round spine, tuck tailbone (cat)",
			"Keep shoulders away from ears",
		},
		Contraindications: []string{
			"Severe wrist injury",
			"Severe back pain",
		},
		Benefits: []string{
			"Mobilizes the spine",
			"Improves coordination",
			"Warms up the body",
		},
		Breathing:     "Sync movement with breath - inhale cow, exhale cat",
		Modifications: "Place hands on blocks if wrists are sensitive",
	},
	{
		Pose: "supine_twist",
		Alignment: []string{
			"Lie on your back",
			"Hug one knee to chest",
			"Gently guide knee across body",
			"Keep both shoulders on the mat",
			"Gaze opposite direction of knee",
		},
		Contraindications: []string{
			"Severe back injury",
			"Pregnancy (avoid deep twists)",
		},
		Benefits: []string{
			"Releases tension in lower back",
			"Stretches spine",
			"Calms nervous system",
		},
		Breathing:     "Breathe deeply, allowing the twist to deepen with each exhale",
		Modifications: "Place a pillow under the bent knee for support",
	},
	{
		Pose: "legs_up_wall",
		Alignment: []string{
			"Sit sideways next to wall",
			"Swing legs up wall as you lie down",
			"Hips close to wall (or slightly away if hamstrings are tight)",
			"Arms relaxed at sides",
			"Close eyes and relax",
		},
		Contraindications: []string{
			"Glaucoma",
			"Severe eye pressure",
		},
		Benefits: []string{
			"Relieves tired legs",
			"Calms nervous system",
			"Reduces swelling",
			"Excellent for menstrual phase",
		},
		Breathing:     "Natural, relaxed breathing",
		Modifications: "Place a folded blanket under hips for support",
	},
	{
		Pose: "mountain_pose",
		Alignment: []string{
			"Stand with feet hip-width apart or together",
			"Weight evenly distributed on all four corners of feet",
			"Knees soft, not locked",
			"Pelvis neutral",
			"Shoulders relaxed, away from ears",
			"Crown of head reaching toward sky",
		},
		Contraindications: []string{},
		Benefits: []string{
			"Improves posture",
			"Builds body awareness",
			"Foundation for all standing poses",
		},
		Breathing:     "Deep, steady breathing",
		Modifications: "Stand with back against wall for alignment feedback",
	},
	{
		Pose: "warrior_ii",
		Alignment: []string{
			"Step feet wide apart",
			"Turn back foot in 45 degrees",
			"Front knee bent, tracking over ankle",
			"Back leg straight and strong",
			"Arms parallel to floor",
			"Gaze over front middle finger",
			"Hips squared to side",
		},
		Contraindications: []string{
			"Hip injury",
			"Knee injury",
		},
		Benefits: []string{
			"Strengthens legs",
			"Opens hips",
			"Builds stamina",
		},
		Breathing:     "Breathe deeply, maintaining steady breath",
		Modifications: "Reduce depth of lunge if knee discomfort",
	},
	{
		Pose: "tree_pose",
		Alignment: []string{
			"Stand on one leg",
			"Place foot on inner thigh, calf, or ankle (not on knee)",
			"Press foot into leg, leg into foot",
			"Hips squared forward",
			"Hands at heart center or overhead",
			"Focus on a fixed point (drishti)",
		},
		Contraindications: []string{
			"Ankle injury",
			"Severe balance issues",
		},
		Benefits: []string{
			"Improves balance",
			"Strengthens standing leg",
			"Opens hip of lifted leg",
		},
		Breathing:     "Steady, calm breathing",
		Modifications: "Use wall for support or place foot on ankle instead of thigh",
	},
	{
		Pose: "seated_forward_fold",
		Alignment: []string{
			"Sit with legs extended",
			"Flex feet, toes pointing toward ceiling",
			"Hinge from hips, not rounding lower back",
			"Reach forward, not down",
			"Keep spine long",
		},
		Contraindications: []string{
			"Severe back injury",
			"Hamstring injury",
		},
		Benefits: []string{
			"Stretches hamstrings",
			"Calms nervous system",
			"Relieves stress",
		},
		Breathing:     "Breathe into the back body, allowing stretch to deepen",
		Modifications: "Sit on a blanket or bend knees slightly",
	},
	{
		Pose: "pigeon_pose",
		Alignment: []string{
			"From downward dog, bring front leg forward",
			"Front shin parallel to front of mat (or more accessible variation)",
			"Back leg extended straight behind",
			"Hips squared forward",
			"Keep front foot flexed to protect knee",
		},
		Contraindications: []string{
			"Knee injury",
			"Hip injury",
			"SI joint issues",
		},
		Benefits: []string{
			"Deep hip opener",
			"Releases tension in glutes",
			"Excellent for menstrual phase",
		},
		Breathing:     "Breathe deeply, allowing hip to release",
		Modifications: "Place pillow under front hip, or do reclining pigeon instead",
	},
	{
		Pose: "cobra_pose",
		Alignment: []string{
			"Lie on belly",
			"Place hands under shoulders",
			"Press tops of feet into mat",
			"Lift chest using back muscles, not just arms",
			"Keep shoulders away from ears",
			"Gaze forward or slightly up",
		},
		Contraindications: []string{
			"Severe back injury",
			"Pregnancy (avoid after first trimester)",
			"Carpal tunnel",
		},
		Benefits: []string{
			"Strengthens back",
			"Opens chest",
			"Improves posture",
		},
		Breathing:     "Breathe deeply as you lift",
		Modifications: "Keep elbows bent, less lift if back is sensitive",
	},
	{
		Pose: "bridge_pose",
		Alignment: []string{
			"Lie on back, knees bent",
			"Feet hip-width apart, close to glutes",
			"Press feet into mat",
			"Lift hips, engaging glutes",
			"Keep knees tracking over ankles",
			"Interlace hands under body or keep arms at sides",
		},
		Contraindications: []string{
			"Neck injury",
			"Knee injury",
		},
		Benefits: []string{
			"Strengthens glutes",
			"Opens chest",
			"Stretches hip flexors",
		},
		Breathing:     "Breathe deeply as you hold",
		Modifications: "Place block under sacrum for support",
	},
	{
		Pose: "downward_dog",
		Alignment: []string{
			"Start on hands and knees",
			"Tuck toes, lift hips up and back",
			"Create inverted V shape",
			"Hands shoulder-width apart",
			"Feet hip-width apart",
			"Hips high, weight back toward legs",
			"Keep micro-bend in knees if hamstrings are tight",
		},
		Contraindications: []string{
			"Wrist injury",
			"High blood pressure",
			"Glaucoma",
		},
		Benefits: []string{
			"Strengthens arms and legs",
			"Stretches hamstrings",
			"Calms brain",
		},
		Breathing:     "Steady, deep breathing",
		Modifications: "Bend knees deeply, use blocks under hands, or do at wall",
	},
	{
		Pose: "breath_awareness",
		Alignment: []string{
			"Comfortable seated or lying position",
			"Spine long if seated",
			"Close eyes",
			"Relax body",
		},
		Contraindications: []string{},
		Benefits: []string{
			"Calms nervous system",
			"Reduces stress",
			"Improves focus",
			"Excellent for all cycle phases",
		},
		Breathing:     "Observe natural breath, then deepen gradually",
		Modifications: "Can be done in any comfortable position",
	},
}
