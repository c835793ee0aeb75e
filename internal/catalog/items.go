package catalog

import "strings"

// SeedItem is one row of the built-in catalog.
type SeedItem struct {
	ID            int64
	NameCN        string
	NameEN        string
	Category      Category
	Difficulty    int
	DescriptionCN string
	DescriptionEN string
	ImageRes      string
	AudioCN       string
	AudioEN       string
	AudioDescCN   string
	Features      []string
	Scenarios     []string
}

// entry is the compact per-item seed tuple; the rest of a SeedItem is
// derived per category.
type entry struct {
	cn, en, desc string
}

// resKey derives the media resource key from the English name:
// "Sweet Potato" -> "sweet_potato".
func resKey(en string) string {
	k := strings.ToLower(en)
	k = strings.ReplaceAll(k, " ", "_")
	k = strings.ReplaceAll(k, "-", "_")
	return k
}

// expand turns a category's entries into full seed items. Difficulty is
// diff1 for the first split entries and diff2 after (the original data
// grades later animals and vehicles harder).
func expand(cat Category, base int64, entries []entry, diff1, diff2, split int, features, scenarios []string) []SeedItem {
	items := make([]SeedItem, len(entries))
	for i, e := range entries {
		diff := diff1
		if i >= split {
			diff = diff2
		}
		res := resKey(e.en)
		items[i] = SeedItem{
			ID:            base + int64(i),
			NameCN:        e.cn,
			NameEN:        e.en,
			Category:      cat,
			Difficulty:    diff,
			DescriptionCN: e.desc,
			DescriptionEN: "A child-friendly description of " + e.en,
			ImageRes:      res,
			AudioCN:       res + "_cn",
			AudioEN:       res + "_en",
			AudioDescCN:   res + "_desc_cn",
			Features:      features,
			Scenarios:     scenarios,
		}
	}
	return items
}

var animals = []entry{
	{"猫", "Cat", "喵喵叫，爱抓老鼠，胡须长长的小动物"},
	{"狗", "Dog", "汪汪叫，人类的好朋友，会看家护院"},
	{"兔子", "Rabbit", "长耳朵，短尾巴，爱吃胡萝卜蹦蹦跳"},
	{"小鸟", "Bird", "长着翅膀，在树上筑巢，会叽叽喳喳唱歌"},
	{"大象", "Elephant", "身体像小山，耳朵像大扇子，鼻子长长的"},
	{"老虎", "Tiger", "森林之王，身上长满黑色的条纹，非常威风"},
	{"狮子", "Lion", "长着浓密的鬃毛，吼声很大，被称为万兽之王"},
	{"长颈鹿", "Giraffe", "脖子非常长，能吃到树顶上的叶子"},
	{"斑马", "Zebra", "身上长满黑白相间的条纹，像穿了件斑马线衣服"},
	{"猴子", "Monkey", "爱吃香蕉，喜欢在树间荡来荡去，非常聪明"},
	{"熊猫", "Panda", "黑眼圈，胖乎乎，最喜欢吃翠绿的竹子"},
	{"考拉", "Koala", "总是抱着树睡觉，看起来懒洋洋的澳洲小动物"},
	{"企鹅", "Penguin", "穿着燕尾服，走起路来摇摇摆摆，住在冰天雪地里"},
	{"猪", "Pig", "大耳朵，大肚子，鼻子圆圆的，睡起觉来呼噜响"},
	{"牛", "Cow", "头上有角，辛勤耕地，还能挤出好喝的牛奶"},
	{"羊", "Sheep", "身上长满白白的卷毛，像一朵朵白云在草地上跑"},
	{"马", "Horse", "跑得飞快，长着漂亮的鬃毛，古代人的交通工具"},
	{"鸡", "Chicken", "尖尖嘴，红鸡冠，早起喔喔叫，提醒大家起床"},
	{"鸭", "Duck", "扁扁嘴，脚上有蹼，走起路来摇摇摆摆，喜欢在水里游"},
	{"熊", "Bear", "身体强壮，毛茸茸的，喜欢吃蜂蜜，冬天会冬眠"},
	{"狐狸", "Fox", "长尾巴，尖耳朵，看起来很机灵，住在洞穴里"},
	{"鹿", "Deer", "头上有像树枝一样的角，胆子很小，跑得很快"},
	{"刺猬", "Hedgehog", "身上长满尖尖的刺，遇到危险会缩成一个球"},
	{"松鼠", "Squirrel", "长着蓬松的大尾巴，喜欢收集坚果藏在树洞里"},
	{"骆驼", "Camel", "背上有驼峰，能在干旱的沙漠里走很长路"},
	{"蛇", "Snake", "身体细长，没有脚，走起路来弯弯曲曲地爬"},
	{"鳄鱼", "Crocodile", "嘴巴很大，牙齿尖尖，披着绿色的硬甲皮"},
	{"乌龟", "Turtle", "背着重重的壳，爬得很慢，遇到危险头会缩进去"},
	{"青蛙", "Frog", "绿衣裳，大嘴巴，害虫天敌，田野里的歌唱家"},
	{"蝴蝶", "Butterfly", "翅膀五颜六色，在花丛中翩翩起舞，非常漂亮"},
	{"蜜蜂", "Bee", "勤劳的小工人，飞在花丛中采蜜，发出嗡嗡声"},
	{"瓢虫", "Ladybug", "圆圆的身体，红衣服黑点点，像个小红球"},
	{"螃蟹", "Crab", "披着硬壳，长着八只脚，横着走，还有大钳子"},
	{"龙虾", "Lobster", "生活在海底，穿着红盔甲，长长的胡须大钳子"},
	{"章鱼", "Octopus", "生活在大海里，长着八条长长的触手，会喷墨汁"},
	{"鲸鱼", "Whale", "世界上最大的动物，生活在海里，头顶会喷水柱"},
	{"海豚", "Dolphin", "非常聪明，皮肤滑溜溜，喜欢在海面上跳跃"},
	{"鲨鱼", "Shark", "牙齿尖利，是海洋里的猎手，背上有个三角形的鳍"},
	{"海马", "Seahorse", "头长得像小马，尾巴卷卷的，生活在温暖的海底"},
	{"水母", "Jellyfish", "透明的身体，像一把撑开的小伞，在水里漂啊漂"},
}

var fruits = []entry{
	{"苹果", "Apple", "红红的圆果子，吃起来脆脆的，又甜又多汁"},
	{"香蕉", "Banana", "弯弯像月亮，剥开黄外皮，果肉软软糯又甜"},
	{"橙子", "Orange", "圆圆的，橘色的皮，剥开一瓣瓣，酸酸甜甜水分足"},
	{"葡萄", "Grape", "一串串，紫晶莹，像一颗颗小圆珠，酸甜可口"},
	{"西瓜", "Watermelon", "绿衣服，红肚子，黑籽籽，夏天解暑最好吃"},
	{"草莓", "Strawberry", "红彤彤，心形脸，身上长满小芝麻点点"},
	{"菠萝", "Pineapple", "披着盔甲，长着绿叶冠，味道酸甜有清香"},
	{"芒果", "Mango", "金黄的皮，椭圆形状，果肉细腻，香甜浓郁"},
	{"梨", "Pear", "上小下大，像个小葫芦，果肉洁白很清甜"},
	{"桃子", "Peach", "粉红脸蛋毛茸茸，肉质鲜嫩汁水多"},
	{"樱桃", "Cherry", "小巧玲珑红透了，像一颗颗红色的小宝石"},
	{"蓝莓", "Blueberry", "深蓝色的小圆球，酸甜可口营养丰富"},
	{"猕猴桃", "Kiwi", "棕色毛皮，绿色心，黑籽点点营养高"},
	{"柠檬", "Lemon", "黄黄的果皮，味道特别酸，能泡出好喝的水"},
	{"火龙果", "Dragonfruit", "红皮绿鳞，像个小火球，里面黑籽密密麻麻"},
	{"哈密瓜", "Melon", "披着网状绿衣服，果肉橘红非常甜"},
	{"荔枝", "Lychee", "红皮凹凸不平，剥开像珍珠，晶莹剔透好滋味"},
	{"椰子", "Coconut", "硬硬的棕壳，里面有清甜的水，还有白白的肉"},
	{"石榴", "Pomegranate", "红红的像小灯笼，剥开里面满是红珍珠"},
	{"柿子", "Persimmon", "橘红圆脸蛋，熟透了像蜜一样甜"},
	{"山竹", "Mangosteen", "紫黑外皮硬邦邦，剥开肉像白蒜瓣"},
	{"柚子", "Pomelo", "大大的圆球，厚厚的黄皮，果肉酸甜一瓣瓣"},
	{"木瓜", "Papaya", "黄皮红心，果肉软糯，香气清新很健康"},
	{"杏子", "Apricot", "黄里透红，圆润可爱，酸酸甜甜有嚼劲"},
	{"李子", "Plum", "紫红或深红，圆圆的一颗，酸甜适口很开胃"},
	{"无花果", "Fig", "紫皮红心，样子很独特，味道香甜营养好"},
	{"杨桃", "Starfruit", "横着切一刀，就是漂亮的五角星形状"},
	{"榴莲", "Durian", "披着尖刺盔甲，闻着臭吃着香，热带果王"},
	{"覆盆子", "Raspberry", "小小的红果子，像一顶顶小帽子，酸甜诱人"},
}

var vegetables = []entry{
	{"胡萝卜", "Carrot", "橘红身子尖尖头，小兔子最爱吃它了"},
	{"白菜", "Cabbage", "白白的帮，绿绿的叶，一层层裹成圆球状"},
	{"西红柿", "Tomato", "红红的圆脸蛋，能当水果也能做菜"},
	{"西兰花", "Broccoli", "绿绿的，像一棵棵迷你小树林"},
	{"土豆", "Potato", "土里长的圆疙瘩，削了皮做薯条最好吃"},
	{"黄瓜", "Cucumber", "细长身子绿皮衣，吃起来清脆又爽口"},
	{"茄子", "Eggplant", "紫亮的外皮，弯弯或长圆，肉质软绵绵"},
	{"玉米", "Corn", "穿着绿衣服，排着整齐的金豆豆，甜甜的"},
	{"南瓜", "Pumpkin", "橘黄大圆脸，万圣节的小灯笼，味道甜甜糯糯"},
	{"洋葱", "Onion", "紫红圆球一层层，剥它的时候会让人流泪"},
	{"大蒜", "Garlic", "白白蒜瓣聚成团，味道辛辣能除菌"},
	{"辣椒", "Chili", "红红或绿绿，身材细长，吃一口嘴巴火辣辣"},
	{"蘑菇", "Mushroom", "像一把把撑开的小雨伞，长在阴凉潮湿的地方"},
	{"豌豆", "Pea", "绿绿的小房子，住着圆圆的绿豆宝宝"},
	{"菠菜", "Spinach", "绿绿的叶子红红的根，大力水手最爱吃"},
	{"芹菜", "Celery", "长长的杆子，清脆有嚼劲，还有特殊香气"},
	{"萝卜", "Radish", "白白胖胖土里钻，吃起来清脆水分足"},
	{"红薯", "Sweet Potato", "红皮黄心，烤着吃又香又甜又糯"},
	{"苦瓜", "Bitter Gourd", "长满疙瘩绿皮衣，味道苦苦但很健康"},
	{"丝瓜", "Luffa", "长长的绿身子，里面有很多丝，清热解暑"},
	{"莲藕", "Lotus Root", "长在泥潭里，切开有很多圆圆的小孔"},
	{"生菜", "Lettuce", "绿绿的叶子大大的，吃烤肉时最喜欢包着它"},
}

var vehicles = []entry{
	{"汽车", "Car", "有四个轮子，嘟嘟响，在马路上带我们去远方"},
	{"公交车", "Bus", "长长的车身很多座，带大家一起出门旅行"},
	{"飞机", "Airplane", "长着大翅膀，在蓝天白云间飞翔，速度非常快"},
	{"自行车", "Bicycle", "两个轮子，要用脚踩，既能锻炼又能代步"},
	{"摩托车", "Motorcycle", "发出轰鸣声，跑得很快，戴上头盔真威风"},
	{"火车", "Train", "长长的车厢连成串，在铁轨上跑得又稳又远"},
	{"高铁", "High-speed Train", "像一道闪电在铁轨上飞过，速度超级快"},
	{"轮船", "Ship", "巨大的身体在大海里航行，带人们去远方"},
	{"潜水艇", "Submarine", "在大海深处游动，像一条巨大的铁鱼"},
	{"直升机", "Helicopter", "头顶螺旋桨转啊转，能原地起飞和停在空中"},
	{"救护车", "Ambulance", "呜哇呜哇响，争分夺秒救助生病的人"},
	{"消防车", "Firetruck", "红红的身体大水炮，勇敢地去灭火"},
	{"警车", "Police Car", "蓝红灯光闪啊闪，警察叔叔开着它抓坏人"},
	{"卡车", "Truck", "力气非常大，能运送很多重重的货物"},
	{"挖掘机", "Excavator", "长着有力的大铁臂，在工地上挖土忙"},
	{"热气球", "Hot Air Balloon", "大大的圆球飘在空中，带人们看美丽的风景"},
	{"飞船", "Spaceship", "飞向遥远的宇宙，探索星星和月亮的秘密"},
}

var daily = []entry{
	{"铅笔", "Pencil", "细细长长，写字画画都要用到它"},
	{"杯子", "Cup", "用来盛水喝，我们每天都要用它补充水分"},
	{"书本", "Book", "里面有很多有趣的故事和知识"},
	{"书包", "Schoolbag", "背在背上，装着书本去上学"},
	{"牙刷", "Toothbrush", "小刷子刷刷牙，让牙齿白白又整洁"},
	{"毛巾", "Towel", "洗完脸擦擦水，软绵绵的很舒服"},
	{"梳子", "Comb", "梳理头发乱糟糟，让发型变得整齐"},
	{"伞", "Umbrella", "下雨天撑开它，就不会被淋湿了"},
	{"帽子", "Hat", "戴在头上遮太阳，或者让小朋友变得更帅气"},
	{"鞋子", "Shoes", "穿在脚上走走路，保护脚丫不受伤"},
	{"衣服", "Clothes", "穿在身上保暖又漂亮"},
	{"床", "Bed", "软绵绵的，晚上睡个香甜的好觉"},
	{"椅子", "Chair", "有靠背，让我们坐下来休息"},
	{"桌子", "Desk", "平平的台面，可以在上面吃饭或写作业"},
	{"灯", "Lamp", "黑夜里发出亮光，照亮房间"},
	{"电视", "TV", "屏幕里有动画片和精彩的世界"},
	{"手机", "Phone", "小小机器能通话，还能拍照看视频"},
	{"钟表", "Clock", "滴答滴答走，告诉我们现在是几点"},
	{"剪刀", "Scissors", "锋利的两片嘴，能剪纸也能剪布"},
	{"碗", "Bowl", "圆圆的，用来装香喷喷的米饭"},
	{"勺子", "Spoon", "舀起汤水送进嘴，吃饭的小帮手"},
	{"筷子", "Chopsticks", "细长两根，中国人吃饭必不可少的工具"},
	{"冰箱", "Fridge", "肚子里冷冰冰，能让食物新鲜不坏"},
	{"洗衣机", "Washing Machine", "转啊转，把脏衣服洗得干干净净"},
	{"吹风机", "Hairdryer", "吹出暖风，让湿头发变干快"},
	{"钥匙", "Key", "小铁片能开门，保护我们的家"},
	{"玩具熊", "Teddy Bear", "毛茸茸的，抱在怀里很有安全感"},
	{"积木", "Blocks", "方块圆块堆一堆，拼出想要的大城堡"},
}

var nature = []entry{
	{"太阳", "Sun", "大火球挂天上，白天给我们带来光和热"},
	{"月亮", "Moon", "有时圆圆像银盘，有时弯弯像小船"},
	{"星星", "Star", "黑夜里眨眼睛，亮晶晶地挂在夜空"},
	{"云朵", "Cloud", "像棉花糖一样在蓝天里飘动"},
	{"彩虹", "Rainbow", "雨后出现的七色桥，横跨在天空"},
	{"雨", "Rain", "从云里落下来的小水滴，滋润大地"},
	{"雪", "Snow", "白茫茫的一片，冬天从天上飘落"},
	{"大山", "Mountain", "高耸入云，屹立在大地上"},
	{"大海", "Ocean", "无边无际的蓝色水域，浪花朵朵"},
	{"森林", "Forest", "长满大树的地方，是动物们的家"},
	{"花朵", "Flower", "五颜六色很芬芳，在枝头悄悄开放"},
}

var food = []entry{
	{"面包", "Bread", "软绵绵，香喷喷，是好吃的早点"},
	{"牛奶", "Milk", "白白的液体，喝了它小朋友长得高"},
	{"鸡蛋", "Egg", "椭圆外壳，营养丰富，能煎也能煮"},
	{"蛋糕", "Cake", "过生日必备，甜甜的，有漂亮的奶油"},
	{"饼干", "Cookie", "薄薄的一片，又酥又脆，各种形状都有"},
	{"糖果", "Candy", "五颜六色，吃到嘴里甜丝丝"},
	{"冰淇淋", "Ice Cream", "冰冰凉凉，入口即化，夏天最受欢迎"},
	{"果汁", "Juice", "水果榨出来的水，各种味道酸甜好喝"},
	{"水", "Water", "透明的，生命离不开它，我们要多喝水"},
	{"汉堡", "Burger", "面包夹肉片，快餐店里的明星"},
	{"薯条", "Fries", "土豆切成长条炸，蘸着番茄酱最好吃"},
	{"披萨", "Pizza", "大圆饼盖满料，切成小片大家分"},
	{"面条", "Noodles", "长长一根根，溜滑顺口很有趣"},
	{"米饭", "Rice", "白白的小颗粒，是我们每天的主食"},
	{"饺子", "Dumpling", "像个小耳朵，里面包着香香的馅"},
	{"巧克力", "Chocolate", "棕色的，味道香醇，甜中带点苦"},
}

var body = []entry{
	{"眼睛", "Eyes", "心灵的小窗户，让我们看清美丽的世界"},
	{"鼻子", "Nose", "长在脸中央，能闻到各种各样的气味"},
	{"嘴巴", "Mouth", "用来吃饭说话，还能露出甜美的笑容"},
	{"耳朵", "Ears", "长在头两边，帮我们听到好听的声音"},
	{"头发", "Hair", "长在头顶，能变换各种漂亮的造型"},
	{"手", "Hand", "长着十个手指头，能写字也能拿东西"},
	{"脚", "Foot", "穿上小鞋子，带我们走遍天下"},
	{"头", "Head", "身体的总司令，思考问题全靠它"},
	{"手指", "Finger", "灵巧的小棒，能帮我们做精细的事"},
}

// SeedItems returns the full built-in catalog in id order.
func SeedItems() []SeedItem {
	var items []SeedItem
	items = append(items, expand(CategoryAnimals, 1, animals, 1, 2, 20,
		[]string{"生命", "可爱"}, []string{"大自然"})...)
	items = append(items, expand(CategoryFruits, 101, fruits, 1, 1, len(fruits),
		[]string{"甜的", "多汁"}, []string{"水果店"})...)
	items = append(items, expand(CategoryVegetables, 201, vegetables, 1, 1, len(vegetables),
		[]string{"绿色", "健康"}, []string{"菜园"})...)
	items = append(items, expand(CategoryVehicles, 301, vehicles, 1, 2, 20,
		[]string{"会动", "运输"}, []string{"马路", "天空", "大海"})...)
	items = append(items, expand(CategoryDaily, 401, daily, 1, 1, len(daily),
		[]string{"日用", "生活"}, []string{"家里"})...)
	items = append(items, expand(CategoryNature, 501, nature, 2, 2, 0,
		[]string{"自然", "景观"}, []string{"户外"})...)
	items = append(items, expand(CategoryFood, 601, food, 1, 1, len(food),
		[]string{"好吃", "饮料"}, []string{"餐厅", "家里"})...)
	items = append(items, expand(CategoryBody, 701, body, 2, 2, 0,
		[]string{"身体", "重要"}, []string{"我自己"})...)
	return items
}
