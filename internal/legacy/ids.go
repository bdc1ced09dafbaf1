// Package legacy translates modern block names into the Minecraft 1.8
// numeric block id and 4-bit metadata scheme.
package legacy

// ID is a 1.8 block id with its metadata (damage) value.
type ID struct {
	Block uint8
	Meta  uint8
}

// Fallback is used for every name the table does not know: plain stone.
var Fallback = ID{Block: 1, Meta: 0}

// Lookup returns the legacy id for a modern block name.
func Lookup(name string) ID {
	if id, ok := table[name]; ok {
		return id
	}
	return Fallback
}

var table = map[string]ID{
	"air":               {0, 0},
	"stone":             {1, 0},
	"granite":           {1, 1},
	"polished_granite":  {1, 2},
	"diorite":           {1, 3},
	"polished_diorite":  {1, 4},
	"andesite":          {1, 5},
	"polished_andesite": {1, 6},
	"grass_block":       {2, 0},
	"dirt":              {3, 0},
	"coarse_dirt":       {3, 1},
	"podzol":            {3, 2},
	"cobblestone":       {4, 0},
	"bedrock":           {7, 0},
	"water":             {9, 0}, // stationary
	"lava":              {11, 0},
	"sand":              {12, 0},
	"red_sand":          {12, 1},
	"gravel":            {13, 0},
	"gold_ore":          {14, 0},
	"iron_ore":          {15, 0},
	"coal_ore":          {16, 0},
	"sponge":            {19, 0},
	"glass":             {20, 0},

	// Wood.
	"oak_planks":      {5, 0},
	"spruce_planks":   {5, 1},
	"birch_planks":    {5, 2},
	"jungle_planks":   {5, 3},
	"acacia_planks":   {5, 4},
	"dark_oak_planks": {5, 5},
	"oak_log":         {17, 0},
	"spruce_log":      {17, 1},
	"birch_log":       {17, 2},
	"jungle_log":      {17, 3},
	"oak_leaves":      {18, 0},
	"spruce_leaves":   {18, 1},
	"birch_leaves":    {18, 2},
	"jungle_leaves":   {18, 3},
	"oak_fence":       {85, 0},
	"oak_slab":        {126, 0},

	// Sandstone.
	"sandstone":            {24, 0},
	"chiseled_sandstone":   {24, 1},
	"smooth_sandstone":     {24, 2},
	"cut_sandstone":        {24, 0},
	"smooth_red_sandstone": {179, 0},

	// Plants, crops and natural blocks.
	"short_grass":   {31, 1},
	"grass":         {31, 1},
	"fern":          {31, 2},
	"dandelion":     {37, 0},
	"poppy":         {38, 0},
	"blue_orchid":   {38, 1},
	"azure_bluet":   {38, 3},
	"wheat":         {59, 7},
	"carrots":       {141, 7},
	"potatoes":      {142, 7},
	"cactus":        {81, 0},
	"pumpkin":       {86, 0},
	"hay_block":     {170, 0},
	"farmland":      {60, 0},
	"moss_block":    {48, 0}, // mossy cobblestone
	"snow_block":    {80, 0},
	"ice":           {79, 0},
	"packed_ice":    {174, 0},
	"clay":          {82, 0},
	"netherrack":    {87, 0},
	"soul_sand":     {88, 0},
	"glowstone":     {89, 0},
	"prismarine":    {168, 0},
	"coal_block":    {173, 0},
	"gold_block":    {41, 0},
	"iron_block":    {42, 0},
	"diamond_ore":   {56, 0},
	"diamond_block": {57, 0},
	"obsidian":      {49, 0},

	// Wool.
	"white_wool":      {35, 0},
	"orange_wool":     {35, 1},
	"magenta_wool":    {35, 2},
	"light_blue_wool": {35, 3},
	"yellow_wool":     {35, 4},
	"lime_wool":       {35, 5},
	"pink_wool":       {35, 6},
	"gray_wool":       {35, 7},
	"light_gray_wool": {35, 8},
	"cyan_wool":       {35, 9},
	"purple_wool":     {35, 10},
	"blue_wool":       {35, 11},
	"brown_wool":      {35, 12},
	"green_wool":      {35, 13},
	"red_wool":        {35, 14},
	"black_wool":      {35, 15},

	// Terracotta.
	"terracotta":            {172, 0},
	"white_terracotta":      {159, 0},
	"orange_terracotta":     {159, 1},
	"light_blue_terracotta": {159, 3},
	"gray_terracotta":       {159, 7},
	"cyan_terracotta":       {159, 9},
	"blue_terracotta":       {159, 11},
	"green_terracotta":      {159, 13},
	"red_terracotta":        {159, 14},

	// Concrete does not exist yet; id 251 is what later versions read back.
	"white_concrete":      {251, 0},
	"light_blue_concrete": {251, 3},
	"yellow_concrete":     {251, 4},
	"lime_concrete":       {251, 5},
	"gray_concrete":       {251, 7},
	"light_gray_concrete": {251, 8},
	"cyan_concrete":       {251, 9},
	"purple_concrete":     {251, 10},
	"blue_concrete":       {251, 11},
	"black_concrete":      {251, 15},

	// Structural and decorative.
	"stone_slab":            {44, 0},
	"stone_brick_slab":      {44, 5},
	"bricks":                {45, 0},
	"mossy_cobblestone":     {48, 0},
	"torch":                 {50, 0},
	"ladder":                {65, 0},
	"rail":                  {66, 0},
	"iron_bars":             {101, 0},
	"glass_pane":            {102, 0},
	"white_stained_glass":   {95, 0},
	"stone_bricks":          {98, 0},
	"mossy_stone_bricks":    {98, 1},
	"cracked_stone_bricks":  {98, 2},
	"chiseled_stone_bricks": {98, 3},
	"nether_bricks":         {112, 0},
	"nether_brick":          {112, 0},
	"cauldron":              {118, 0},
	"cobblestone_wall":      {139, 0},
	"quartz_block":          {155, 0},
	"smooth_quartz":         {155, 0},
	"quartz_bricks":         {155, 0},
	"red_nether_bricks":     {215, 0},
	"red_nether_brick":      {215, 0},
	"purpur_block":          {201, 0},
	"purpur_pillar":         {202, 0},
	"end_stone_bricks":      {206, 0},
	"smooth_stone":          {1, 0},

	// Blocks newer than 1.8, folded onto the closest existing look.
	"blackstone":                 {112, 0},
	"polished_blackstone":        {112, 0},
	"polished_blackstone_bricks": {112, 0},
	"deepslate_bricks":           {98, 0},
	"polished_deepslate":         {98, 0},
	"mud_bricks":                 {45, 0},
	"netherite_block":            {215, 0},
	"warped_planks":              {5, 5},
	"crimson_planks":             {5, 4},
	"polished_basalt":            {1, 0},
	"scaffolding":                {85, 0},
}
