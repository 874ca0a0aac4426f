package pose

// Catalog returns the built-in pose pool. The returned slice is a copy,
// so callers may reorder or trim it freely.
func Catalog() []Pose {
	out := make([]Pose, len(catalog))
	copy(out, catalog)
	return out
}

var catalog = []Pose{
	// Restorative (safe for menstrual, high fatigue)
	{Name: "child_pose", Sanskrit: "Balasana", Types: []Type{Restorative, ForwardFold}, Difficulty: Beginner, DurationHint: "1-3 min"},
	{Name: "legs_up_wall", Sanskrit: "Viparita Karani", Types: []Type{Restorative, Inversion}, Difficulty: Beginner, DurationHint: "5-10 min"},
	{Name: "corpse_pose", Sanskrit: "Savasana", Types: []Type{Restorative}, Difficulty: Beginner, DurationHint: "5-15 min"},
	{Name: "supported_bridge", Sanskrit: "Setu Bandha Sarvangasana (supported)", Types: []Type{Restorative, Backbend}, Difficulty: Beginner, DurationHint: "1-2 min"},
	{Name: "reclined_bound_angle", Sanskrit: "Supta Baddha Konasana", Types: []Type{Restorative, HipOpener}, Difficulty: Beginner, DurationHint: "3-5 min"},
	{Name: "supported_fish", Sanskrit: "Matsyasana (supported)", Types: []Type{Restorative, Backbend}, Difficulty: Beginner, DurationHint: "2-4 min"},
	{Name: "happy_baby", Sanskrit: "Ananda Balasana", Types: []Type{Restorative, HipOpener}, Difficulty: Beginner, DurationHint: "1-2 min"},
	{Name: "reclined_hero", Sanskrit: "Supta Virasana", Types: []Type{Restorative, HipOpener}, Difficulty: Intermediate, DurationHint: "1-3 min"},
	{Name: "legs_on_chair", Sanskrit: "Viparita Karani (chair)", Types: []Type{Restorative}, Difficulty: Beginner, DurationHint: "5-10 min"},
	{Name: "sphinx_pose", Sanskrit: "Salamba Bhujangasana", Types: []Type{Restorative, Backbend}, Difficulty: Beginner, DurationHint: "1-2 min"},

	// Gentle stretches
	{Name: "cat_cow", Sanskrit: "Marjaryasana-Bitilasana", Types: []Type{GentleStretch}, Difficulty: Beginner, DurationHint: "6-10 reps"},
	{Name: "supine_twist", Sanskrit: "Supta Matsyendrasana", Types: []Type{GentleStretch, Twist}, Difficulty: Beginner, DurationHint: "1-2 min each side"},
	{Name: "knee_to_chest", Sanskrit: "Apanasana", Types: []Type{GentleStretch, HipOpener}, Difficulty: Beginner, DurationHint: "30 sec - 1 min"},
	{Name: "thread_the_needle", Sanskrit: "Parsva Balasana", Types: []Type{GentleStretch, Twist}, Difficulty: Beginner, DurationHint: "1 min each side"},
	{Name: "wind_releasing", Sanskrit: "Pavana Muktasana", Types: []Type{GentleStretch}, Difficulty: Beginner, DurationHint: "30 sec - 1 min"},
	{Name: "lying_quad_stretch", Sanskrit: "Supta Padangusthasana (bent)", Types: []Type{GentleStretch}, Difficulty: Beginner, DurationHint: "1 min each side"},
	{Name: "seated_neck_stretch", Sanskrit: "neck release", Types: []Type{GentleStretch, Seated}, Difficulty: Beginner, DurationHint: "30 sec each side"},
	{Name: "pelvic_tilts", Sanskrit: "gentle pelvic tilts", Types: []Type{GentleStretch}, Difficulty: Beginner, DurationHint: "8-10 reps"},
	{Name: "ankle_circles", Sanskrit: "ankle mobility", Types: []Type{GentleStretch}, Difficulty: Beginner, DurationHint: "5 each direction"},
	{Name: "wrist_stretches", Sanskrit: "wrist mobility", Types: []Type{GentleStretch}, Difficulty: Beginner, DurationHint: "30 sec each"},

	// Standing
	{Name: "mountain_pose", Sanskrit: "Tadasana", Types: []Type{Standing}, Difficulty: Beginner, DurationHint: "30 sec - 1 min"},
	{Name: "warrior_i", Sanskrit: "Virabhadrasana I", Types: []Type{Standing}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min each side"},
	{Name: "warrior_ii", Sanskrit: "Virabhadrasana II", Types: []Type{Standing}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min each side"},
	{Name: "warrior_iii", Sanskrit: "Virabhadrasana III", Types: []Type{Standing, Balance}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "tree_pose", Sanskrit: "Vrikshasana", Types: []Type{Standing, Balance}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min each side"},
	{Name: "standing_forward_fold", Sanskrit: "Uttanasana", Types: []Type{ForwardFold, Standing}, Difficulty: Beginner, DurationHint: "30 sec - 1 min"},
	{Name: "half_lift", Sanskrit: "Ardha Uttanasana", Types: []Type{Standing, ForwardFold}, Difficulty: Beginner, DurationHint: "30 sec"},
	{Name: "triangle_pose", Sanskrit: "Trikonasana", Types: []Type{Standing, SideBend}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min each side"},
	{Name: "extended_side_angle", Sanskrit: "Utthita Parsvakonasana", Types: []Type{Standing, SideBend}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min each side"},
	{Name: "pyramid_pose", Sanskrit: "Parsvottanasana", Types: []Type{Standing, ForwardFold}, Difficulty: Intermediate, DurationHint: "1 min each side"},
	{Name: "high_lunge", Sanskrit: "Anjaneyasana (high)", Types: []Type{Standing}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min each side"},
	{Name: "low_lunge", Sanskrit: "Anjaneyasana", Types: []Type{Standing, HipOpener}, Difficulty: Beginner, DurationHint: "1 min each side"},
	{Name: "chair_pose", Sanskrit: "Utkatasana", Types: []Type{Standing, StrongCore}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min"},
	{Name: "gate_pose", Sanskrit: "Parighasana", Types: []Type{Standing, GentleStretch, SideBend}, Difficulty: Intermediate, DurationHint: "1 min each side"},
	{Name: "standing_wide_legged", Sanskrit: "Prasarita Padottanasana", Types: []Type{Standing, ForwardFold}, Difficulty: Beginner, DurationHint: "1 min"},

	// Balance
	{Name: "eagle_pose", Sanskrit: "Garudasana", Types: []Type{Standing, Balance}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "dancer_pose", Sanskrit: "Natarajasana", Types: []Type{Standing, Balance, Backbend}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "half_moon", Sanskrit: "Ardha Chandrasana", Types: []Type{Standing, Balance}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min each side"},
	{Name: "revolved_triangle", Sanskrit: "Parivrtta Trikonasana", Types: []Type{Standing, Twist}, Difficulty: Intermediate, DurationHint: "1 min each side"},
	{Name: "standing_leg_raise", Sanskrit: "Utthita Hasta Padangusthasana", Types: []Type{Standing, Balance}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "toe_stand", Sanskrit: "Padangusthasana (balance)", Types: []Type{Balance}, Difficulty: Advanced, DurationHint: "30 sec each side"},

	// Forward folds
	{Name: "seated_forward_fold", Sanskrit: "Paschimottanasana", Types: []Type{ForwardFold, Seated}, Difficulty: Beginner, DurationHint: "1-3 min"},
	{Name: "head_to_knee", Sanskrit: "Janu Sirsasana", Types: []Type{ForwardFold, HipOpener, Seated}, Difficulty: Beginner, DurationHint: "1-2 min each side"},
	{Name: "wide_angled_seated_fold", Sanskrit: "Upavistha Konasana", Types: []Type{ForwardFold, HipOpener, Seated}, Difficulty: Intermediate, DurationHint: "1-2 min"},
	{Name: "standing_split", Sanskrit: "Urdhva Prasarita Eka Padasana", Types: []Type{ForwardFold, Standing, Balance}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "revolved_head_to_knee", Sanskrit: "Parivrtta Janu Sirsasana", Types: []Type{ForwardFold, Twist, Seated, SideBend}, Difficulty: Intermediate, DurationHint: "1 min each side"},

	// Twists
	{Name: "seated_twist", Sanskrit: "Ardha Matsyendrasana", Types: []Type{Twist, Seated}, Difficulty: Intermediate, DurationHint: "1 min each side"},
	{Name: "revolved_chair", Sanskrit: "Parivrtta Utkatasana", Types: []Type{Twist, Standing}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "revolved_lunge", Sanskrit: "Parivrtta Anjaneyasana", Types: []Type{Twist, Standing}, Difficulty: Intermediate, DurationHint: "1 min each side"},
	{Name: "revolved_wide_leg", Sanskrit: "Parivrtta Upavistha Konasana", Types: []Type{Twist, HipOpener}, Difficulty: Intermediate, DurationHint: "1 min each side"},
	{Name: "lizard_twist", Sanskrit: "twisted lizard", Types: []Type{Twist, HipOpener}, Difficulty: Intermediate, DurationHint: "1 min each side"},

	// Hip openers
	{Name: "pigeon_pose", Sanskrit: "Eka Pada Rajakapotasana", Types: []Type{HipOpener}, Difficulty: Intermediate, DurationHint: "1-3 min each side"},
	{Name: "butterfly_pose", Sanskrit: "Baddha Konasana", Types: []Type{HipOpener, GentleStretch, Seated}, Difficulty: Beginner, DurationHint: "1-3 min"},
	{Name: "fire_log_pose", Sanskrit: "Agnistambhasana", Types: []Type{HipOpener, Seated}, Difficulty: Intermediate, DurationHint: "1-2 min each side"},
	{Name: "cow_face_pose", Sanskrit: "Gomukhasana", Types: []Type{HipOpener, Seated}, Difficulty: Intermediate, DurationHint: "1-2 min each side"},
	{Name: "double_pigeon", Sanskrit: "Agnistambhasana", Types: []Type{HipOpener}, Difficulty: Intermediate, DurationHint: "1-2 min each side"},
	{Name: "lizard_pose", Sanskrit: "Utthan Pristhasana", Types: []Type{HipOpener, Standing}, Difficulty: Intermediate, DurationHint: "1-2 min each side"},
	{Name: "frog_pose", Sanskrit: "Mandukasana", Types: []Type{HipOpener}, Difficulty: Intermediate, DurationHint: "1-2 min"},
	{Name: "reclined_pigeon", Sanskrit: "Supta Kapotasana", Types: []Type{HipOpener, Restorative}, Difficulty: Beginner, DurationHint: "1-2 min each side"},
	{Name: "squat_pose", Sanskrit: "Malasana", Types: []Type{HipOpener, Standing}, Difficulty: Intermediate, DurationHint: "1 min"},

	// Seated (lotus, hero; pranayama and meditation)
	{Name: "lotus_pose", Sanskrit: "Padmasana", Types: []Type{Seated, Breathing}, Difficulty: Intermediate, DurationHint: "1-5 min"},
	{Name: "hero_pose", Sanskrit: "Virasana", Types: []Type{Seated, GentleStretch}, Difficulty: Beginner, DurationHint: "1-3 min"},
	{Name: "easy_seat", Sanskrit: "Sukhasana", Types: []Type{Seated, Breathing}, Difficulty: Beginner, DurationHint: "1-5 min"},

	// Breathing
	{Name: "breath_awareness", Sanskrit: "Pranayama", Types: []Type{Breathing, Seated}, Difficulty: Beginner, DurationHint: "3-5 min"},
	{Name: "diaphragmatic_breathing", Sanskrit: "belly breathing", Types: []Type{Breathing, Seated}, Difficulty: Beginner, DurationHint: "3-5 min"},
	{Name: "alternate_nostril", Sanskrit: "Nadi Shodhana", Types: []Type{Breathing, Seated}, Difficulty: Beginner, DurationHint: "3-5 min"},
	{Name: "victorious_breath", Sanskrit: "Ujjayi", Types: []Type{Breathing}, Difficulty: Beginner, DurationHint: "2-3 min"},
	{Name: "extended_exhale", Sanskrit: "1:2 breathing", Types: []Type{Breathing}, Difficulty: Beginner, DurationHint: "3-5 min"},

	// Backbends
	{Name: "cobra_pose", Sanskrit: "Bhujangasana", Types: []Type{Backbend}, Difficulty: Beginner, DurationHint: "30 sec - 1 min"},
	{Name: "bridge_pose", Sanskrit: "Setu Bandhasana", Types: []Type{Backbend}, Difficulty: Beginner, DurationHint: "30 sec - 1 min"},
	{Name: "upward_dog", Sanskrit: "Urdhva Mukha Svanasana", Types: []Type{Backbend}, Difficulty: Intermediate, DurationHint: "30 sec"},
	{Name: "camel_pose", Sanskrit: "Ustrasana", Types: []Type{Backbend}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min"},
	{Name: "fish_pose", Sanskrit: "Matsyasana", Types: []Type{Backbend}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min"},
	{Name: "wheel_pose", Sanskrit: "Urdhva Dhanurasana", Types: []Type{Backbend}, Difficulty: Advanced, DurationHint: "30 sec - 1 min"},
	{Name: "locust_pose", Sanskrit: "Salabhasana", Types: []Type{Backbend}, Difficulty: Intermediate, DurationHint: "30 sec"},
	{Name: "bow_pose", Sanskrit: "Dhanurasana", Types: []Type{Backbend}, Difficulty: Intermediate, DurationHint: "30 sec"},
	{Name: "sphinx_pose_backbend", Sanskrit: "Salamba Bhujangasana", Types: []Type{Backbend, GentleStretch}, Difficulty: Beginner, DurationHint: "1 min"},

	// Core
	{Name: "boat_pose", Sanskrit: "Navasana", Types: []Type{StrongCore}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min"},
	{Name: "plank_pose", Sanskrit: "Phalakasana", Types: []Type{StrongCore}, Difficulty: Beginner, DurationHint: "30 sec - 1 min"},
	{Name: "side_plank", Sanskrit: "Vasisthasana", Types: []Type{StrongCore, Balance}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "dolphin_plank", Sanskrit: "Makara Adho Mukha Svanasana", Types: []Type{StrongCore}, Difficulty: Intermediate, DurationHint: "30 sec"},
	{Name: "hollow_body", Sanskrit: "core hollow hold", Types: []Type{StrongCore}, Difficulty: Intermediate, DurationHint: "30 sec"},
	{Name: "dead_bug", Sanskrit: "supine dead bug", Types: []Type{StrongCore}, Difficulty: Beginner, DurationHint: "8-10 reps each side"},
	{Name: "bird_dog", Sanskrit: "table balance", Types: []Type{StrongCore, Balance}, Difficulty: Beginner, DurationHint: "8 reps each side"},
	{Name: "forearm_plank", Sanskrit: "Phalakasana (forearms)", Types: []Type{StrongCore}, Difficulty: Beginner, DurationHint: "30 sec - 1 min"},

	// Inversions
	{Name: "downward_dog", Sanskrit: "Adho Mukha Svanasana", Types: []Type{Inversion, Standing}, Difficulty: Beginner, DurationHint: "30 sec - 1 min"},
	{Name: "dolphin_pose", Sanskrit: "Ardha Pincha Mayurasana", Types: []Type{Inversion}, Difficulty: Intermediate, DurationHint: "1 min"},
	{Name: "headstand", Sanskrit: "Sirsasana", Types: []Type{Inversion, ArmBalance}, Difficulty: Advanced, DurationHint: "30 sec - 2 min"},
	{Name: "shoulderstand", Sanskrit: "Salamba Sarvangasana", Types: []Type{Inversion}, Difficulty: Intermediate, DurationHint: "1-3 min"},
	{Name: "plow_pose", Sanskrit: "Halasana", Types: []Type{Inversion}, Difficulty: Intermediate, DurationHint: "1-2 min"},
	{Name: "tripod_headstand", Sanskrit: "Sirsasana B", Types: []Type{Inversion, ArmBalance}, Difficulty: Advanced, DurationHint: "30 sec - 1 min"},
	{Name: "forearm_stand", Sanskrit: "Pincha Mayurasana", Types: []Type{Inversion, ArmBalance}, Difficulty: Advanced, DurationHint: "30 sec"},
	{Name: "handstand_prep", Sanskrit: "Adho Mukha Vrksasana (prep)", Types: []Type{Inversion, ArmBalance}, Difficulty: Advanced, DurationHint: "30 sec"},

	// Arm balances / advanced
	{Name: "crow_pose", Sanskrit: "Bakasana", Types: []Type{ArmBalance, Balance}, Difficulty: Intermediate, DurationHint: "30 sec"},
	{Name: "side_crow", Sanskrit: "Parsva Bakasana", Types: []Type{ArmBalance, Twist}, Difficulty: Advanced, DurationHint: "30 sec each side"},
	{Name: "eight_angle", Sanskrit: "Astavakrasana", Types: []Type{ArmBalance, Twist}, Difficulty: Advanced, DurationHint: "30 sec each side"},
	{Name: "firefly_pose", Sanskrit: "Tittibhasana", Types: []Type{ArmBalance}, Difficulty: Advanced, DurationHint: "30 sec"},
	{Name: "scale_pose", Sanskrit: "Tolasana", Types: []Type{ArmBalance, StrongCore}, Difficulty: Intermediate, DurationHint: "30 sec"},

	// Flow / transitional
	{Name: "sun_salutation_a", Sanskrit: "Surya Namaskar A", Types: []Type{Standing, ForwardFold, GentleStretch}, Difficulty: Beginner, DurationHint: "3-5 rounds"},
	{Name: "sun_salutation_b", Sanskrit: "Surya Namaskar B", Types: []Type{Standing, StrongCore}, Difficulty: Intermediate, DurationHint: "3-5 rounds"},
	{Name: "flow_lunge_series", Sanskrit: "lunge flow", Types: []Type{Standing, HipOpener}, Difficulty: Intermediate, DurationHint: "1 min each side"},
	{Name: "cat_cow_flow", Sanskrit: "Marjaryasana-Bitilasana flow", Types: []Type{GentleStretch}, Difficulty: Beginner, DurationHint: "10 reps"},
	{Name: "reclined_hand_to_big_toe", Sanskrit: "Supta Padangusthasana", Types: []Type{ForwardFold, GentleStretch, HipOpener}, Difficulty: Beginner, DurationHint: "1 min each side"},

	// Yin / restorative extensions
	{Name: "yin_dragonfly", Sanskrit: "Dragonfly Pose", Types: []Type{Yin, HipOpener, ForwardFold}, Difficulty: Beginner, DurationHint: "2-5 min"},
	{Name: "yin_sleeping_swan", Sanskrit: "Sleeping Swan", Types: []Type{Yin, HipOpener}, Difficulty: Beginner, DurationHint: "2-4 min"},
	{Name: "yin_caterpillar", Sanskrit: "Caterpillar Pose", Types: []Type{Yin, ForwardFold}, Difficulty: Beginner, DurationHint: "2-5 min"},
	{Name: "yin_bananasana", Sanskrit: "Bananasana", Types: []Type{Yin, SideBend}, Difficulty: Beginner, DurationHint: "2-4 min"},
	{Name: "yin_saddle", Sanskrit: "Saddle Pose", Types: []Type{Yin, Backbend}, Difficulty: Intermediate, DurationHint: "2-4 min"},
	{Name: "yin_snail", Sanskrit: "Snail Pose", Types: []Type{Yin, ForwardFold}, Difficulty: Intermediate, DurationHint: "2-4 min"},
	{Name: "yin_square", Sanskrit: "Square Pose", Types: []Type{Yin, HipOpener}, Difficulty: Beginner, DurationHint: "2-4 min"},

	// Somatic / mobility
	{Name: "somatic_pelvic_circle", Sanskrit: "pelvic circles", Types: []Type{Somatic, GentleStretch}, Difficulty: Beginner, DurationHint: "1 min"},
	{Name: "somatic_spinal_wave", Sanskrit: "spinal wave", Types: []Type{Somatic, GentleStretch}, Difficulty: Beginner, DurationHint: "1 min"},
	{Name: "fascia_roll_back", Sanskrit: "rolling spine", Types: []Type{Mobility}, Difficulty: Beginner, DurationHint: "1 min"},
	{Name: "hip_cars", Sanskrit: "hip CARs", Types: []Type{Mobility, HipOpener}, Difficulty: Intermediate, DurationHint: "5 reps each side"},
	{Name: "shoulder_cars", Sanskrit: "shoulder CARs", Types: []Type{Mobility}, Difficulty: Intermediate, DurationHint: "5 reps each side"},

	// Standing variations
	{Name: "reverse_warrior", Sanskrit: "Viparita Virabhadrasana", Types: []Type{Standing, SideBend}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "humble_warrior", Sanskrit: "Baddha Virabhadrasana", Types: []Type{Standing, ForwardFold}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "crescent_lunge", Sanskrit: "Ashta Chandrasana", Types: []Type{Standing}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "goddess_pose", Sanskrit: "Utkata Konasana", Types: []Type{Standing, HipOpener}, Difficulty: Intermediate, DurationHint: "30 sec - 1 min"},
	{Name: "star_pose", Sanskrit: "Utthita Tadasana", Types: []Type{Standing}, Difficulty: Beginner, DurationHint: "30 sec"},
	{Name: "reverse_triangle", Sanskrit: "Parivrtta Trikonasana (variation)", Types: []Type{Standing, Twist}, Difficulty: Intermediate, DurationHint: "30 sec each side"},

	// Balance extensions
	{Name: "standing_half_lotus", Sanskrit: "Ardha Padmasana (standing)", Types: []Type{Balance}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "warrior_iv", Sanskrit: "Virabhadrasana IV", Types: []Type{Balance, Standing}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "airplane_pose", Sanskrit: "Dekasana", Types: []Type{Balance}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "half_toe_stand", Sanskrit: "Ardha Padangusthasana", Types: []Type{Balance}, Difficulty: Intermediate, DurationHint: "30 sec each side"},

	// Seated expansions
	{Name: "staff_pose", Sanskrit: "Dandasana", Types: []Type{Seated}, Difficulty: Beginner, DurationHint: "1 min"},
	{Name: "reverse_tabletop", Sanskrit: "Ardha Purvottanasana", Types: []Type{Seated, Backbend}, Difficulty: Beginner, DurationHint: "30 sec"},
	{Name: "compass_pose", Sanskrit: "Parivrtta Surya Yantrasana", Types: []Type{Seated, HipOpener}, Difficulty: Advanced, DurationHint: "30 sec each side"},
	{Name: "tortoise_pose", Sanskrit: "Kurmasana", Types: []Type{Seated, ForwardFold}, Difficulty: Advanced, DurationHint: "1 min"},
	{Name: "bound_lotus", Sanskrit: "Baddha Padmasana", Types: []Type{Seated}, Difficulty: Advanced, DurationHint: "1 min"},

	// Twist extensions
	{Name: "supine_revolved_twist", Sanskrit: "Supta Parivrtta", Types: []Type{Twist}, Difficulty: Beginner, DurationHint: "1 min each side"},
	{Name: "standing_revolved_forward_fold", Sanskrit: "Parivrtta Uttanasana", Types: []Type{Twist, Standing}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "twisted_triangle_bind", Sanskrit: "Parivrtta Trikonasana (bind)", Types: []Type{Twist}, Difficulty: Advanced, DurationHint: "30 sec each side"},

	// Backbend expansions
	{Name: "puppy_pose", Sanskrit: "Uttana Shishosana", Types: []Type{Backbend}, Difficulty: Beginner, DurationHint: "1 min"},
	{Name: "king_pigeon", Sanskrit: "Rajakapotasana", Types: []Type{Backbend}, Difficulty: Advanced, DurationHint: "30 sec each side"},
	{Name: "wild_thing", Sanskrit: "Camatkarasana", Types: []Type{Backbend}, Difficulty: Intermediate, DurationHint: "30 sec each side"},
	{Name: "drop_back", Sanskrit: "drop back", Types: []Type{Backbend}, Difficulty: Advanced, DurationHint: "30 sec"},

	// Core expansions
	{Name: "low_boat", Sanskrit: "Ardha Navasana", Types: []Type{StrongCore}, Difficulty: Intermediate, DurationHint: "30 sec"},
	{Name: "scissor_legs", Sanskrit: "scissor legs", Types: []Type{StrongCore}, Difficulty: Intermediate, DurationHint: "10 reps"},
	{Name: "bicycle_crunch", Sanskrit: "bicycle crunch", Types: []Type{StrongCore}, Difficulty: Intermediate, DurationHint: "10 reps"},
	{Name: "side_crunch", Sanskrit: "side crunch", Types: []Type{StrongCore}, Difficulty: Intermediate, DurationHint: "10 reps each side"},

	// Pranayama expansions
	{Name: "box_breathing", Sanskrit: "Sama Vritti", Types: []Type{Breathing}, Difficulty: Beginner, DurationHint: "3-5 min"},
	{Name: "kapalbhati", Sanskrit: "Kapalbhati", Types: []Type{Breathing}, Difficulty: Intermediate, DurationHint: "1-2 min"},
	{Name: "bhramari", Sanskrit: "Bhramari", Types: []Type{Breathing}, Difficulty: Beginner, DurationHint: "2-3 min"},
	{Name: "sitali", Sanskrit: "Sitali", Types: []Type{Breathing}, Difficulty: Beginner, DurationHint: "2-3 min"},

	// Prenatal / menstrual safe
	{Name: "side_lying_savasana", Sanskrit: "Side Savasana", Types: []Type{Restorative}, Difficulty: Beginner, DurationHint: "5-10 min"},
	{Name: "supported_child_pose", Sanskrit: "Balasana (supported)", Types: []Type{Restorative}, Difficulty: Beginner, DurationHint: "2-4 min"},
	{Name: "gentle_cat", Sanskrit: "Marjaryasana (gentle)", Types: []Type{GentleStretch}, Difficulty: Beginner, DurationHint: "6 reps"},
	{Name: "seated_side_bend", Sanskrit: "Parsva Sukhasana", Types: []Type{GentleStretch}, Difficulty: Beginner, DurationHint: "1 min each side"},
}
