package telegram

// User-facing texts. The bot speaks Persian except for /alive.

const (
	phoneShareButtonLabel = "اشتراک گذاری شماره موبایل 📱"
	broadcastButtonLabel  = "پیام همگانی 📢"

	commandStartDescription = "شروع ربات"

	msgWelcome = "👋 سلام %s عزیز! به ربات دریافت API تلگرام خوش آمدید!\n\n" +
		"این ربات به شما کمک می‌کند تا API ID و API Hash حساب تلگرام خود را به راحتی دریافت کنید. " +
		"این اطلاعات برای توسعه‌دهندگان و افرادی که می‌خواهند با API تلگرام کار کنند، مفید است.\n\n" +
		"⚠️ توجه: شماره موبایل شما نزد ما محفوظ است و در هیچ کجا ذخیره نمی‌شود. " +
		"فرآیند دریافت API کاملاً امن است و مستقیماً از طریق تلگرام انجام می‌شود.\n\n" +
		"برای شروع، لطفاً شماره موبایل خود را به همراه کد کشور (مثال: +989123456789) ارسال کنید."

	msgAdminHint = "شما ادمین هستید! می‌توانید از دکمه 'پیام همگانی 📢' برای ارسال پیام به همه کاربران استفاده کنید."

	msgPhonePrompt = "لطفاً شماره موبایل خود را برای دریافت API ID و API Hash ارسال کنید " +
		"(می‌توانید آن را تایپ کنید یا با دکمه زیر به اشتراک بگذارید):"

	msgPhoneReceived = "شماره شما: `%s` دریافت شد. منتظر ارسال کد تایید از تلگرام باشید..."

	msgInvalidPhone = "فرمت شماره موبایل نامعتبر است. لطفاً شماره را با کد کشور (مثال: +989123456789) وارد کنید " +
		"یا از دکمه 'اشتراک گذاری شماره موبایل' استفاده کنید."

	msgNeedPhone = "لطفاً شماره موبایل خود را ارسال کنید یا از دکمه 'اشتراک گذاری شماره موبایل' استفاده کنید."

	msgAccountBlocked = "متاسفانه حساب شما مسدود شده است! 🚫 لطفا 8 ساعت دیگر امتحان کنید."

	msgNoRandomHash = "خطا در دریافت random_hash. لطفا شماره را مجددا بررسی کنید یا بعدا تلاش نمایید. 😔"

	msgProviderUnreachable = "مشکلی در ارتباط با سرور تلگرام پیش آمد: %v 😞"

	msgProviderUnreachableRetry = "مشکلی در ارتباط با سرور تلگرام پیش آمد: %v 😞. " +
		"لطفاً مطمئن شوید که کد صحیح را وارد کرده‌اید و از /start برای شروع مجدد استفاده کنید."

	msgCodePrompt = "حالا کدی که از طرف تلگرام برای شما ارسال شده را وارد کنید. " +
		"می‌توانید کد پیام تلگرام را هم فوروارد کنید. ✉️"

	msgInvalidCode = "کد وارد شده نامعتبر است. لطفاً کد صحیح را مجدداً وارد کنید یا پیام فوروارد شده را ارسال کنید. 🔢"

	msgNeedStart = "لطفاً ابتدا شماره موبایل خود را ارسال کنید. از /start استفاده کنید."

	msgCredentials = "🎉 API شما با موفقیت دریافت شد!\n\n" +
		"🔑 *Api ID*: `%s`\n" +
		"🔒 *Api HASH*: `%s`\n\n" +
		"🧩 *Public Key*: `%s`\n" +
		"⚙️ *Production configuration*: `%s`\n\n" +
		"امیدواریم از این اطلاعات برای پروژه‌های خود استفاده مفید کنید! 😊"

	msgCredentialsNotFound = "متاسفانه اطلاعات API یافت نشد. 🧐 احتمالاً اطلاعات وارد شده نادرست بوده " +
		"یا تلگرام با خطایی مواجه شده است. لطفاً از دستور /start برای شروع مجدد استفاده کنید."

	msgBroadcastAdminsOnly = "این قابلیت فقط برای ادمین‌ها در دسترسه!"

	msgBroadcastPrompt = "هر پیامی که می‌خوای بنویس تا برای همه کاربران ارسال بشه 📢"

	msgBroadcastLoadFailed = "❌ خطا در خواندن لیست کاربران!"

	msgBroadcastDone = "پیام به %d کاربر ارسال شد 📢"

	msgRateLimitCountdown = "شما به دلیل ارسال پیام زیاد تا %d ثانیه نمی‌تونید پیام بفرستید 😕"

	msgRateLimitBurst = "شما بیش از حد پیام فرستادید! تا ۳۰ ثانیه نمی‌تونید پیام بفرستید 😕"

	msgAlive = "I'm alive and kicking! 🤖 DigitIDBot is here!"
)
